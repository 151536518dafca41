package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arrivalPhase() confirmPhase {
	return confirmPhase{
		ownerColumn: "arrival_owner_at",
		userColumn:  "arrival_user_at",
		fromStatus:  domain.BookingStatusReserved,
		toStatus:    domain.BookingStatusOccupied,
	}
}

func departurePhase() confirmPhase {
	return confirmPhase{
		ownerColumn: "departure_owner_at",
		userColumn:  "departure_user_at",
		fromStatus:  domain.BookingStatusOccupied,
		toStatus:    domain.BookingStatusCompleted,
	}
}

func confirmedAt() sql.NullTime {
	return sql.NullTime{Time: time.Now().UTC(), Valid: true}
}

func TestResolveConfirm_FirstSideRecords(t *testing.T) {
	action, err := resolveConfirm(domain.BookingStatusReserved, arrivalPhase(), sql.NullTime{}, sql.NullTime{})

	require.NoError(t, err)
	assert.Equal(t, confirmRecord, action)
}

func TestResolveConfirm_SecondSideAdvances(t *testing.T) {
	// Whichever side went first, the other side's confirmation advances.
	action, err := resolveConfirm(domain.BookingStatusReserved, arrivalPhase(), sql.NullTime{}, confirmedAt())

	require.NoError(t, err)
	assert.Equal(t, confirmAdvance, action)
}

func TestResolveConfirm_RepeatBeforeOtherSideIsNoop(t *testing.T) {
	action, err := resolveConfirm(domain.BookingStatusReserved, arrivalPhase(), confirmedAt(), sql.NullTime{})

	require.NoError(t, err)
	assert.Equal(t, confirmNoop, action)
}

func TestResolveConfirm_RepeatAfterAdvanceIsNoop(t *testing.T) {
	// Both sides confirmed and the status already moved on.
	action, err := resolveConfirm(domain.BookingStatusOccupied, arrivalPhase(), confirmedAt(), confirmedAt())

	require.NoError(t, err)
	assert.Equal(t, confirmNoop, action)
}

func TestResolveConfirm_WrongStatus(t *testing.T) {
	_, err := resolveConfirm(domain.BookingStatusPending, arrivalPhase(), sql.NullTime{}, sql.NullTime{})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestResolveConfirm_AdvancedWithoutMyTimestampIsInvalid(t *testing.T) {
	// ocupada without this side's arrival timestamp means the caller is
	// confirming a phase it never participated in.
	_, err := resolveConfirm(domain.BookingStatusOccupied, arrivalPhase(), sql.NullTime{}, confirmedAt())

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestResolveConfirm_DeparturePhaseOrders(t *testing.T) {
	phase := departurePhase()

	first, err := resolveConfirm(domain.BookingStatusOccupied, phase, sql.NullTime{}, sql.NullTime{})
	require.NoError(t, err)
	assert.Equal(t, confirmRecord, first)

	second, err := resolveConfirm(domain.BookingStatusOccupied, phase, sql.NullTime{}, confirmedAt())
	require.NoError(t, err)
	assert.Equal(t, confirmAdvance, second)

	repeat, err := resolveConfirm(domain.BookingStatusCompleted, phase, confirmedAt(), confirmedAt())
	require.NoError(t, err)
	assert.Equal(t, confirmNoop, repeat)
}
