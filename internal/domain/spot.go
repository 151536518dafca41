package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type SpotStatus string

const (
	SpotStatusAvailable   SpotStatus = "disponivel"
	SpotStatusReserved    SpotStatus = "reservada"
	SpotStatusOccupied    SpotStatus = "ocupada"
	SpotStatusMaintenance SpotStatus = "manutencao"
)

// Spot is a single parking space. BookingID is set if and only if the
// status is reservada or ocupada; only the allocator statements in the
// repository layer may change these fields.
type Spot struct {
	ID         string      `json:"id"`
	FacilityID string      `json:"estacionamento_id"`
	Number     string      `json:"number"`
	Status     SpotStatus  `json:"status"`
	BookingID  null.String `json:"booking_id"`
	OccupantID null.String `json:"occupant_id"`
	Version    int         `json:"version"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (s *Spot) Available() bool {
	return s.Status == SpotStatusAvailable
}
