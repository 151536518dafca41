package ports

import (
	"context"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
)

// BookingNotifier emits notification records for the parties affected by a
// transition. Implementations must never fail the calling operation.
type BookingNotifier interface {
	BookingRequested(ctx context.Context, b *domain.Booking, f *domain.Facility)
	BookingAccepted(ctx context.Context, b *domain.Booking, f *domain.Facility)
	BookingRejected(ctx context.Context, b *domain.Booking, f *domain.Facility)
	BookingExpired(ctx context.Context, b *domain.Booking, f *domain.Facility)
	BookingCancelled(ctx context.Context, b *domain.Booking, f *domain.Facility)
	OccupancyStarted(ctx context.Context, b *domain.Booking, f *domain.Facility)
	BookingCompleted(ctx context.Context, b *domain.Booking, f *domain.Facility)
}
