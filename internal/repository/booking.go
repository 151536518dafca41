package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, user_id, estacionamento_id, spot_number, booking_date,
		start_time, end_time, price, status, created_at, expires_at,
		accepted_at, rejected_at, arrival_owner_at, arrival_user_at,
		departure_owner_at, departure_user_at, completed_at, cancelled_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create reserves the spot and inserts the booking in one transaction. The
// conditional spot update decides the winner under concurrency; the partial
// unique index on active bookings is a second line of defence.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = reserveSpotTx(ctx, tx, b.FacilityID, b.SpotNumber, b.ID, b.UserID); err != nil {
		return err
	}

	query := `INSERT INTO bookings (id, user_id, estacionamento_id, spot_number,
				booking_date, start_time, end_time, price, status, created_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.UserID, b.FacilityID, b.SpotNumber,
		b.Date, b.StartTime, b.EndTime, b.Price, b.Status, b.CreatedAt, b.ExpiresAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSpotUnavailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Accept moves a pending booking to reservada. The spot keeps its
// reservation, so no vagas update is needed.
func (r *BookingRepository) Accept(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status = $2, accepted_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusReserved, domain.BookingStatusPending,
	)
	if err != nil {
		return fmt.Errorf("accept booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("accept rows affected: %w", err)
	}
	if rows == 0 {
		return r.classifyFailedTransition(ctx, id)
	}

	return nil
}

func (r *BookingRepository) Reject(ctx context.Context, id string) error {
	return r.terminate(ctx, id,
		`UPDATE bookings
		 SET status = $2, rejected_at = now()
		 WHERE id = $1 AND status = ANY($3)
		 RETURNING estacionamento_id, spot_number`,
		domain.BookingStatusRejected, []domain.BookingStatus{domain.BookingStatusPending},
	)
}

func (r *BookingRepository) Cancel(ctx context.Context, id string) error {
	return r.terminate(ctx, id,
		`UPDATE bookings
		 SET status = $2, cancelled_at = now()
		 WHERE id = $1 AND status = ANY($3)
		 RETURNING estacionamento_id, spot_number`,
		domain.BookingStatusCancelled, domain.ActiveStatuses,
	)
}

// Expire is system-invoked only. The deadline check is part of the guard so
// a concurrent accept that already moved the booking wins cleanly.
func (r *BookingRepository) Expire(ctx context.Context, id string) error {
	return r.terminate(ctx, id,
		`UPDATE bookings
		 SET status = $2
		 WHERE id = $1 AND status = ANY($3) AND expires_at <= now()
		 RETURNING estacionamento_id, spot_number`,
		domain.BookingStatusExpired, []domain.BookingStatus{domain.BookingStatusPending},
	)
}

// terminate applies a transition into a terminal status and releases the
// held spot in the same transaction.
func (r *BookingRepository) terminate(ctx context.Context, id, query string, to domain.BookingStatus, from []domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var facilityID, spotNumber string
	err = tx.QueryRowContext(ctx, query, id, to, pq.Array(from)).Scan(&facilityID, &spotNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.classifyFailedTransition(ctx, id)
		}
		return fmt.Errorf("update booking status: %w", err)
	}

	if err = releaseSpotTx(ctx, tx, facilityID, spotNumber, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *BookingRepository) ConfirmArrival(ctx context.Context, id string, side domain.Party) (bool, error) {
	return r.confirm(ctx, id, side, confirmPhase{
		ownerColumn: "arrival_owner_at",
		userColumn:  "arrival_user_at",
		fromStatus:  domain.BookingStatusReserved,
		toStatus:    domain.BookingStatusOccupied,
		advance: func(ctx context.Context, tx *sql.Tx, facilityID, spotNumber string) error {
			return occupySpotTx(ctx, tx, facilityID, spotNumber, id)
		},
	})
}

func (r *BookingRepository) ConfirmDeparture(ctx context.Context, id string, side domain.Party) (bool, error) {
	return r.confirm(ctx, id, side, confirmPhase{
		ownerColumn: "departure_owner_at",
		userColumn:  "departure_user_at",
		fromStatus:  domain.BookingStatusOccupied,
		toStatus:    domain.BookingStatusCompleted,
		advance: func(ctx context.Context, tx *sql.Tx, facilityID, spotNumber string) error {
			return releaseSpotTx(ctx, tx, facilityID, spotNumber, id)
		},
	})
}

type confirmPhase struct {
	ownerColumn string
	userColumn  string
	fromStatus  domain.BookingStatus
	toStatus    domain.BookingStatus
	advance     func(ctx context.Context, tx *sql.Tx, facilityID, spotNumber string) error
}

type confirmAction int

const (
	confirmNoop confirmAction = iota
	confirmRecord
	confirmAdvance
)

// resolveConfirm decides what one side's confirmation does to the row held
// under lock. Re-confirming is a side-effect-free no-op whether the phase
// has advanced or not; the first confirmation of the second side advances.
func resolveConfirm(status domain.BookingStatus, phase confirmPhase, mine, other sql.NullTime) (confirmAction, error) {
	if status == phase.toStatus && mine.Valid {
		return confirmNoop, nil
	}
	if status != phase.fromStatus {
		return confirmNoop, domain.ErrInvalidTransition
	}
	if mine.Valid {
		return confirmNoop, nil
	}
	if other.Valid {
		return confirmAdvance, nil
	}
	return confirmRecord, nil
}

// confirm records one side's handshake timestamp under a row lock. The
// second confirmation, whichever side supplies it, advances the status and
// applies the paired spot update atomically.
func (r *BookingRepository) confirm(ctx context.Context, id string, side domain.Party, phase confirmPhase) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(
		`SELECT status, estacionamento_id, spot_number, %s, %s
		 FROM bookings
		 WHERE id = $1
		 FOR UPDATE`,
		phase.ownerColumn, phase.userColumn,
	)

	var status domain.BookingStatus
	var facilityID, spotNumber string
	var ownerAt, userAt sql.NullTime
	err = tx.QueryRowContext(ctx, query, id).Scan(&status, &facilityID, &spotNumber, &ownerAt, &userAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrBookingNotFound
		}
		return false, fmt.Errorf("lock booking: %w", err)
	}

	mine, other := ownerAt, userAt
	column := phase.ownerColumn
	if side == domain.PartyRequester {
		mine, other = userAt, ownerAt
		column = phase.userColumn
	}

	action, err := resolveConfirm(status, phase, mine, other)
	if err != nil {
		return false, err
	}
	if action == confirmNoop {
		return false, nil
	}

	setQuery := fmt.Sprintf(`UPDATE bookings SET %s = now() WHERE id = $1`, column)
	if _, err = tx.ExecContext(ctx, setQuery, id); err != nil {
		return false, fmt.Errorf("record confirmation: %w", err)
	}

	if action == confirmRecord {
		return false, tx.Commit()
	}

	advanceQuery := `UPDATE bookings SET status = $2, completed_at = CASE WHEN $3 THEN now() ELSE completed_at END WHERE id = $1`
	completed := phase.toStatus == domain.BookingStatusCompleted
	if _, err = tx.ExecContext(ctx, advanceQuery, id, phase.toStatus, completed); err != nil {
		return false, fmt.Errorf("advance booking status: %w", err)
	}

	if err = phase.advance(ctx, tx, facilityID, spotNumber); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

func (r *BookingRepository) ListDueForExpiry(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1 AND expires_at <= now()
			  ORDER BY expires_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list due bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByFacility(ctx context.Context, facilityID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE estacionamento_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by facility: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// classifyFailedTransition distinguishes a missing booking from one whose
// current status rejects the attempted transition.
func (r *BookingRepository) classifyFailedTransition(ctx context.Context, id string) error {
	query := `SELECT status FROM bookings WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}

	var status domain.BookingStatus
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("scan booking status: %w", err)
	}

	return domain.ErrInvalidTransition
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.FacilityID, &b.SpotNumber, &b.Date,
		&b.StartTime, &b.EndTime, &b.Price, &b.Status, &b.CreatedAt, &b.ExpiresAt,
		&b.AcceptedAt, &b.RejectedAt, &b.ArrivalOwner, &b.ArrivalUser,
		&b.DepartOwner, &b.DepartUser, &b.CompletedAt, &b.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
