package ports

import (
	"context"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
)

// BookingRepo applies booking state transitions. Every transition is a
// single atomic unit of work that also updates the held spot where the
// contract requires it; a guard that does not hold yields
// domain.ErrInvalidTransition and leaves both rows untouched.
type BookingRepo interface {
	// Create reserves the target spot and inserts the booking in one
	// transaction. Returns domain.ErrSpotUnavailable if the spot is not
	// disponivel at that moment.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Accept(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	// ConfirmArrival records one side's arrival confirmation. It reports
	// whether this confirmation advanced the booking to ocupada.
	ConfirmArrival(ctx context.Context, id string, side domain.Party) (bool, error)
	ConfirmDeparture(ctx context.Context, id string, side domain.Party) (bool, error)
	ListDueForExpiry(ctx context.Context) ([]*domain.Booking, error)
	Expire(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByFacility(ctx context.Context, facilityID string) ([]*domain.Booking, error)
}
