package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type BookingStatus string

// Status values come from the product's Portuguese vocabulary and are part
// of the API contract; they are stored as-is.
const (
	BookingStatusPending   BookingStatus = "aguardando_confirmacao"
	BookingStatusReserved  BookingStatus = "reservada"
	BookingStatusOccupied  BookingStatus = "ocupada"
	BookingStatusCompleted BookingStatus = "concluida"
	BookingStatusRejected  BookingStatus = "rejeitada"
	BookingStatusExpired   BookingStatus = "expirada"
	BookingStatusCancelled BookingStatus = "cancelada"
)

// ActiveStatuses are the non-terminal statuses. A spot may be held by at
// most one booking in one of these statuses.
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusReserved,
	BookingStatusOccupied,
}

func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusRejected,
		BookingStatusExpired, BookingStatusCancelled:
		return true
	}
	return false
}

// Party identifies which side of a booking is acting in the two-sided
// arrival/departure handshake.
type Party string

const (
	PartyOwner     Party = "owner"
	PartyRequester Party = "requester"
)

type Booking struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	FacilityID   string        `json:"estacionamento_id"`
	SpotNumber   string        `json:"spot_number"`
	Date         time.Time     `json:"date"`
	StartTime    string        `json:"start_time"`
	EndTime      string        `json:"end_time"`
	Price        float64       `json:"price"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	ExpiresAt    time.Time     `json:"expires_at"`
	AcceptedAt   null.Time     `json:"accepted_at"`
	RejectedAt   null.Time     `json:"rejected_at"`
	ArrivalOwner null.Time     `json:"arrival_owner_at"`
	ArrivalUser  null.Time     `json:"arrival_user_at"`
	DepartOwner  null.Time     `json:"departure_owner_at"`
	DepartUser   null.Time     `json:"departure_user_at"`
	CompletedAt  null.Time     `json:"completed_at"`
	CancelledAt  null.Time     `json:"cancelled_at"`
}

type CreateBookingInput struct {
	UserID     string
	FacilityID string
	SpotNumber string
	Date       time.Time
	StartTime  string
	EndTime    string
}

// SweepReport aggregates the result of one expiration sweep. Bookings that
// lost the race against an owner decision count as neither expired nor
// failed.
type SweepReport struct {
	Expired int `json:"expired"`
	Failed  int `json:"failed"`
}
