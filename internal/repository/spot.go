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

// The statements in this file are the only code that mutates vagas rows.
// Booking transitions call the *Tx helpers inside their own transactions so
// a booking row and its spot always change together or not at all.

type SpotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSpotRepo(db *dbpg.DB) *SpotRepository {
	return &SpotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// reserveSpotTx is the allocator's check-and-set: the conditional UPDATE
// succeeds for exactly one of any number of concurrent callers.
func reserveSpotTx(ctx context.Context, tx *sql.Tx, facilityID, number, bookingID, occupantID string) error {
	query := `UPDATE vagas
			  SET status = $1, booking_id = $2, occupant_id = $3,
			      version = version + 1, updated_at = now()
			  WHERE estacionamento_id = $4 AND number = $5 AND status = $6`
	res, err := tx.ExecContext(
		ctx, query,
		domain.SpotStatusReserved, bookingID, occupantID,
		facilityID, number, domain.SpotStatusAvailable,
	)
	if err != nil {
		return fmt.Errorf("reserve spot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve spot rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (
					     SELECT 1 FROM vagas
					     WHERE estacionamento_id = $1 AND number = $2)`
		if err := tx.QueryRowContext(ctx, checkQuery, facilityID, number).Scan(&exists); err != nil {
			return fmt.Errorf("check spot: %w", err)
		}
		if !exists {
			return domain.ErrSpotNotFound
		}
		return domain.ErrSpotUnavailable
	}

	return nil
}

// occupySpotTx flips a reserved spot to ocupada without touching the
// occupancy reference. A mismatched booking id means the spot was
// reassigned by a separately resolved race; the update is then a no-op.
func occupySpotTx(ctx context.Context, tx *sql.Tx, facilityID, number, expectedBookingID string) error {
	query := `UPDATE vagas
			  SET status = $1, version = version + 1, updated_at = now()
			  WHERE estacionamento_id = $2 AND number = $3 AND booking_id = $4`
	_, err := tx.ExecContext(
		ctx, query,
		domain.SpotStatusOccupied, facilityID, number, expectedBookingID,
	)
	if err != nil {
		return fmt.Errorf("occupy spot: %w", err)
	}
	return nil
}

// releaseSpotTx returns a spot to disponivel and clears its occupancy
// reference, but only while the expected booking still holds it.
func releaseSpotTx(ctx context.Context, tx *sql.Tx, facilityID, number, expectedBookingID string) error {
	query := `UPDATE vagas
			  SET status = $1, booking_id = NULL, occupant_id = NULL,
			      version = version + 1, updated_at = now()
			  WHERE estacionamento_id = $2 AND number = $3 AND booking_id = $4`
	_, err := tx.ExecContext(
		ctx, query,
		domain.SpotStatusAvailable, facilityID, number, expectedBookingID,
	)
	if err != nil {
		return fmt.Errorf("release spot: %w", err)
	}
	return nil
}

func (r *SpotRepository) GetByFacilityAndNumber(ctx context.Context, facilityID, number string) (*domain.Spot, error) {
	query := `SELECT id, estacionamento_id, number, status, booking_id, occupant_id, version, updated_at
			  FROM vagas
			  WHERE estacionamento_id = $1 AND number = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, facilityID, number)
	if err != nil {
		return nil, fmt.Errorf("get spot: %w", err)
	}

	var s domain.Spot
	if err = row.Scan(&s.ID, &s.FacilityID, &s.Number, &s.Status, &s.BookingID, &s.OccupantID, &s.Version, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpotNotFound
		}
		return nil, fmt.Errorf("scan spot: %w", err)
	}

	return &s, nil
}

func (r *SpotRepository) ListByFacility(ctx context.Context, facilityID string) ([]*domain.Spot, error) {
	query := `SELECT id, estacionamento_id, number, status, booking_id, occupant_id, version, updated_at
			  FROM vagas
			  WHERE estacionamento_id = $1
			  ORDER BY number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Spot
	for rows.Next() {
		var s domain.Spot
		if err = rows.Scan(&s.ID, &s.FacilityID, &s.Number, &s.Status, &s.BookingID, &s.OccupantID, &s.Version, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan spot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
