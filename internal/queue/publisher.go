package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

// Publisher pushes booking events onto a durable RabbitMQ queue. An empty
// URL disables publishing, mirroring how the Telegram notifier degrades.
type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger logger.Logger
}

func NewPublisher(url string, log logger.Logger) (*Publisher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, event publishing disabled")
		return &Publisher{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err = ch.QueueDeclare(BookingEventsQueue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, logger: log}, nil
}

func (p *Publisher) Publish(ctx context.Context, event BookingEvent) error {
	if p.ch == nil {
		p.logger.Debug("event publish skipped (broker disabled)",
			logger.String("type", event.Type),
		)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		"", BookingEventsQueue, false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if p.ch == nil {
		return nil
	}
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("close channel: %w", err)
	}
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("close connection: %w", err)
	}
	return nil
}
