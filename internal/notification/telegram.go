package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier is an optional delivery adapter. The core's contract is
// the persisted notification record; Telegram delivery is best effort.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram delivery disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) Send(ctx context.Context, chatID *int64, title, message string) {
	if n.bot == nil {
		n.logger.Debug("telegram delivery skipped (bot disabled)", logger.String("title", title))
		return
	}

	if chatID == nil {
		n.logger.Debug("telegram delivery skipped (no chat_id)", logger.String("title", title))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("telegram delivery skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, fmt.Sprintf("*%s*\n\n%s", title, message))
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram message",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
