package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/ACX0S/Spatioo-sub001/internal/service/ports"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

type FacilityService struct {
	facilityRepo ports.FacilityRepo
	spotRepo     ports.SpotRepo
	cache        *redis.Client
	cacheTTL     time.Duration
	logger       logger.Logger
}

func NewFacilityService(
	facilityRepo ports.FacilityRepo,
	spotRepo ports.SpotRepo,
	cache *redis.Client,
	cacheTTL time.Duration,
	logger logger.Logger,
) *FacilityService {
	return &FacilityService{
		facilityRepo: facilityRepo,
		spotRepo:     spotRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

func (s *FacilityService) List(ctx context.Context) ([]*domain.Facility, error) {
	return s.facilityRepo.List(ctx)
}

// ListSpots returns a facility's spots with their current availability.
// Results are cached per facility; every allocation change deletes the key.
func (s *FacilityService) ListSpots(ctx context.Context, facilityID string) ([]*domain.Spot, error) {
	key := spotsCacheKey(facilityID)

	if s.cache != nil {
		data, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var spots []*domain.Spot
			if err = json.Unmarshal(data, &spots); err == nil {
				return spots, nil
			}
		}
	}

	if _, err := s.facilityRepo.GetByID(ctx, facilityID); err != nil {
		return nil, err
	}

	spots, err := s.spotRepo.ListByFacility(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(spots); err == nil {
			if err = s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache spots",
					logger.String("estacionamento_id", facilityID),
					logger.String("error", err.Error()),
				)
			}
		}
	}

	return spots, nil
}

func spotsCacheKey(facilityID string) string {
	return "spots:" + facilityID
}
