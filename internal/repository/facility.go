package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type FacilityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFacilityRepo(db *dbpg.DB) *FacilityRepository {
	return &FacilityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *FacilityRepository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	query := `SELECT id, owner_id, name, address, opens_at, closes_at, price_per_hour,
				EXTRACT(EPOCH FROM reservation_ttl)::bigint, created_at
			  FROM estacionamentos
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}

	f, err := scanFacility(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFacilityNotFound
		}
		return nil, fmt.Errorf("scan facility: %w", err)
	}

	return f, nil
}

func (r *FacilityRepository) List(ctx context.Context) ([]*domain.Facility, error) {
	query := `SELECT id, owner_id, name, address, opens_at, closes_at, price_per_hour,
				EXTRACT(EPOCH FROM reservation_ttl)::bigint, created_at
			  FROM estacionamentos
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var res []*domain.Facility
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}

func scanFacility(row rowScanner) (*domain.Facility, error) {
	var f domain.Facility
	var ttlSeconds sql.NullInt64
	err := row.Scan(
		&f.ID, &f.OwnerID, &f.Name, &f.Address, &f.OpensAt, &f.ClosesAt,
		&f.PricePerHour, &ttlSeconds, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	// A facility without a configured TTL scans as NULL; a zero duration
	// tells the booking service to use its default.
	if ttlSeconds.Valid {
		f.ReservationTTL = time.Duration(ttlSeconds.Int64) * time.Second
	}
	return &f, nil
}
