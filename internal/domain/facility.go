package domain

import "time"

// Facility (estacionamento) is read-mostly from the booking core's point
// of view: ownership authorizes owner-side actions and ReservationTTL
// drives the pending-booking deadline.
type Facility struct {
	ID             string        `json:"id"`
	OwnerID        string        `json:"owner_id"`
	Name           string        `json:"name"`
	Address        string        `json:"address"`
	OpensAt        string        `json:"opens_at"`
	ClosesAt       string        `json:"closes_at"`
	PricePerHour   float64       `json:"price_per_hour"`
	ReservationTTL time.Duration `json:"reservation_ttl"`
	CreatedAt      time.Time     `json:"created_at"`
}
