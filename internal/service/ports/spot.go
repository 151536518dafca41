package ports

import (
	"context"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
)

type SpotRepo interface {
	GetByFacilityAndNumber(ctx context.Context, facilityID, number string) (*domain.Spot, error)
	ListByFacility(ctx context.Context, facilityID string) ([]*domain.Spot, error)
}
