// Package notification turns booking transitions into durable notification
// records and fans them out to best-effort delivery channels.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/ACX0S/Spatioo-sub001/internal/queue"
	"github.com/ACX0S/Spatioo-sub001/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/guregu/null.v4"
)

// Emitter implements ports.BookingNotifier. The persisted record is the
// contract; queue and Telegram delivery never fail the caller.
type Emitter struct {
	repo      ports.NotificationRepo
	userRepo  ports.UserRepo
	publisher *queue.Publisher
	telegram  *TelegramNotifier
	logger    logger.Logger
}

func NewEmitter(
	repo ports.NotificationRepo,
	userRepo ports.UserRepo,
	publisher *queue.Publisher,
	telegram *TelegramNotifier,
	logger logger.Logger,
) *Emitter {
	return &Emitter{
		repo:      repo,
		userRepo:  userRepo,
		publisher: publisher,
		telegram:  telegram,
		logger:    logger,
	}
}

func (e *Emitter) BookingRequested(ctx context.Context, b *domain.Booking, f *domain.Facility) {
	e.emit(ctx, b, f, f.OwnerID, domain.NotificationBookingRequested,
		"Nova solicitação de reserva",
		fmt.Sprintf("A vaga %s do estacionamento %s foi solicitada. Confirme ou recuse a reserva.",
			b.SpotNumber, f.Name),
	)
}

func (e *Emitter) BookingAccepted(ctx context.Context, b *domain.Booking, f *domain.Facility) {
	e.emit(ctx, b, f, b.UserID, domain.NotificationBookingAccepted,
		"Reserva confirmada",
		fmt.Sprintf("Sua reserva da vaga %s no %s foi confirmada para %s, das %s às %s.",
			b.SpotNumber, f.Name, b.Date.Format("02/01/2006"), b.StartTime, b.EndTime),
	)
}

func (e *Emitter) BookingRejected(ctx context.Context, b *domain.Booking, f *domain.Facility) {
	e.emit(ctx, b, f, b.UserID, domain.NotificationBookingRejected,
		"Reserva recusada",
		fmt.Sprintf("Sua solicitação da vaga %s no %s foi recusada pelo estacionamento.",
			b.SpotNumber, f.Name),
	)
}

func (e *Emitter) BookingExpired(ctx context.Context, b *domain.Booking, f *domain.Facility) {
	e.emit(ctx, b, f, b.UserID, domain.NotificationBookingExpired,
		"Reserva expirada",
		fmt.Sprintf("Sua solicitação da vaga %s no %s expirou sem resposta do estacionamento.",
			b.SpotNumber, f.Name),
	)
}

func (e *Emitter) BookingCancelled(ctx context.Context, b *domain.Booking, f *domain.Facility) {
	msg := fmt.Sprintf("A reserva da vaga %s no %s foi cancelada.", b.SpotNumber, f.Name)
	e.emit(ctx, b, f, b.UserID, domain.NotificationBookingCancelled, "Reserva cancelada", msg)
	e.emit(ctx, b, f, f.OwnerID, domain.NotificationBookingCancelled, "Reserva cancelada", msg)
}

func (e *Emitter) OccupancyStarted(ctx context.Context, b *domain.Booking, f *domain.Facility) {
	msg := fmt.Sprintf("A chegada na vaga %s do %s foi confirmada pelos dois lados.", b.SpotNumber, f.Name)
	e.emit(ctx, b, f, b.UserID, domain.NotificationOccupancyStarted, "Chegada confirmada", msg)
	e.emit(ctx, b, f, f.OwnerID, domain.NotificationOccupancyStarted, "Chegada confirmada", msg)
}

func (e *Emitter) BookingCompleted(ctx context.Context, b *domain.Booking, f *domain.Facility) {
	msg := fmt.Sprintf("A reserva da vaga %s no %s foi concluída. Valor: R$ %.2f.", b.SpotNumber, f.Name, b.Price)
	e.emit(ctx, b, f, b.UserID, domain.NotificationBookingCompleted, "Reserva concluída", msg)
	e.emit(ctx, b, f, f.OwnerID, domain.NotificationBookingCompleted, "Reserva concluída", msg)
}

// eventStatus maps a notification type to the booking status that the
// transition produced. The booking passed to the emitter was loaded before
// the transition, so its own Status field lags by one step.
func eventStatus(typ domain.NotificationType, current domain.BookingStatus) domain.BookingStatus {
	switch typ {
	case domain.NotificationBookingRequested:
		return domain.BookingStatusPending
	case domain.NotificationBookingAccepted:
		return domain.BookingStatusReserved
	case domain.NotificationBookingRejected:
		return domain.BookingStatusRejected
	case domain.NotificationBookingExpired:
		return domain.BookingStatusExpired
	case domain.NotificationBookingCancelled:
		return domain.BookingStatusCancelled
	case domain.NotificationOccupancyStarted:
		return domain.BookingStatusOccupied
	case domain.NotificationBookingCompleted:
		return domain.BookingStatusCompleted
	}
	return current
}

func (e *Emitter) emit(ctx context.Context, b *domain.Booking, f *domain.Facility, recipientID string, typ domain.NotificationType, title, message string) {
	record := &domain.Notification{
		ID:         uuid.New().String(),
		UserID:     recipientID,
		Type:       typ,
		Title:      title,
		Message:    message,
		BookingID:  null.StringFrom(b.ID),
		FacilityID: null.StringFrom(f.ID),
		CreatedAt:  time.Now().UTC(),
	}

	if err := e.repo.Create(ctx, record); err != nil {
		e.logger.Error("failed to persist notification",
			logger.String("booking_id", b.ID),
			logger.String("recipient_id", recipientID),
			logger.String("error", err.Error()),
		)
	}

	if e.publisher != nil {
		event := queue.BookingEvent{
			Type:        string(typ),
			BookingID:   b.ID,
			UserID:      b.UserID,
			FacilityID:  f.ID,
			SpotNumber:  b.SpotNumber,
			Status:      string(eventStatus(typ, b.Status)),
			RecipientID: recipientID,
			OccurredAt:  record.CreatedAt,
		}
		if err := e.publisher.Publish(ctx, event); err != nil {
			e.logger.Error("failed to publish booking event",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if e.telegram != nil {
		user, err := e.userRepo.GetByID(ctx, recipientID)
		if err != nil {
			e.logger.Debug("telegram delivery skipped (recipient lookup failed)",
				logger.String("recipient_id", recipientID),
			)
			return
		}
		e.telegram.Send(ctx, user.TelegramChatID, title, message)
	}
}
