package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type NotificationType string

const (
	NotificationBookingRequested NotificationType = "reserva_solicitada"
	NotificationBookingAccepted  NotificationType = "reserva_aceita"
	NotificationBookingRejected  NotificationType = "reserva_rejeitada"
	NotificationBookingExpired   NotificationType = "reserva_expirada"
	NotificationBookingCancelled NotificationType = "reserva_cancelada"
	NotificationOccupancyStarted NotificationType = "ocupacao_iniciada"
	NotificationBookingCompleted NotificationType = "reserva_concluida"
)

// Notification is an immutable record produced by the core on decisive
// transitions. Delivery and the read flag belong to external consumers.
type Notification struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	BookingID  null.String      `json:"booking_id"`
	FacilityID null.String      `json:"estacionamento_id"`
	Read       bool             `json:"read"`
	CreatedAt  time.Time        `json:"created_at"`
}
