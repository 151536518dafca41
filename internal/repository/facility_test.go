package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFacilityRow plays the database row for scanFacility.
type stubFacilityRow struct {
	ttl sql.NullInt64
}

func (r stubFacilityRow) Scan(dest ...any) error {
	*(dest[0].(*string)) = "f1"
	*(dest[1].(*string)) = "owner1"
	*(dest[2].(*string)) = "Central"
	*(dest[3].(*string)) = "Rua das Flores, 100"
	*(dest[4].(*string)) = "08:00"
	*(dest[5].(*string)) = "20:00"
	*(dest[6].(*float64)) = 10
	*(dest[7].(*sql.NullInt64)) = r.ttl
	*(dest[8].(*time.Time)) = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return nil
}

func TestScanFacility_NullReservationTTL(t *testing.T) {
	f, err := scanFacility(stubFacilityRow{ttl: sql.NullInt64{}})

	require.NoError(t, err)
	assert.Equal(t, "f1", f.ID)
	assert.Equal(t, time.Duration(0), f.ReservationTTL)
}

func TestScanFacility_ConfiguredReservationTTL(t *testing.T) {
	f, err := scanFacility(stubFacilityRow{ttl: sql.NullInt64{Int64: 900, Valid: true}})

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, f.ReservationTTL)
}
