package ports

import (
	"context"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
)

type FacilityRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
}
