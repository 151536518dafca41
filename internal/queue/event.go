// Package queue defines the payloads published to the message broker for
// external delivery systems.
package queue

import "time"

const BookingEventsQueue = "booking.events"

// BookingEvent mirrors a decisive booking transition. Consumers get enough
// context to deliver a notification without querying the primary database.
type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	UserID      string    `json:"user_id"`
	FacilityID  string    `json:"estacionamento_id"`
	SpotNumber  string    `json:"spot_number"`
	Status      string    `json:"status"`
	RecipientID string    `json:"recipient_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
