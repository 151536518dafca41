package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/ACX0S/Spatioo-sub001/internal/service/ports/mocks"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSpots() []*domain.Spot {
	return []*domain.Spot{
		{ID: "s1", FacilityID: "f1", Number: "A-01", Status: domain.SpotStatusAvailable},
		{ID: "s2", FacilityID: "f1", Number: "A-02", Status: domain.SpotStatusReserved},
	}
}

func TestFacilityService_ListSpots_CacheMiss(t *testing.T) {
	facilityRepo := mocks.NewMockFacilityRepo(t)
	spotRepo := mocks.NewMockSpotRepo(t)
	cache, cacheMock := redismock.NewClientMock()

	svc := NewFacilityService(facilityRepo, spotRepo, cache, 30*time.Second, newTestLogger(t))

	spots := testSpots()
	data, err := json.Marshal(spots)
	require.NoError(t, err)

	cacheMock.ExpectGet("spots:f1").RedisNil()
	facilityRepo.EXPECT().GetByID(mock.Anything, "f1").Return(&domain.Facility{ID: "f1"}, nil)
	spotRepo.EXPECT().ListByFacility(mock.Anything, "f1").Return(spots, nil)
	cacheMock.ExpectSet("spots:f1", data, 30*time.Second).SetVal("OK")

	got, err := svc.ListSpots(context.Background(), "f1")

	require.NoError(t, err)
	assert.Equal(t, spots, got)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestFacilityService_ListSpots_CacheHit(t *testing.T) {
	facilityRepo := mocks.NewMockFacilityRepo(t)
	spotRepo := mocks.NewMockSpotRepo(t)
	cache, cacheMock := redismock.NewClientMock()

	svc := NewFacilityService(facilityRepo, spotRepo, cache, 30*time.Second, newTestLogger(t))

	spots := testSpots()
	data, err := json.Marshal(spots)
	require.NoError(t, err)

	cacheMock.ExpectGet("spots:f1").SetVal(string(data))

	got, err := svc.ListSpots(context.Background(), "f1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "A-01", got[0].Number)
	facilityRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	spotRepo.AssertNotCalled(t, "ListByFacility", mock.Anything, mock.Anything)
	assert.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestFacilityService_ListSpots_UnknownFacility(t *testing.T) {
	facilityRepo := mocks.NewMockFacilityRepo(t)
	spotRepo := mocks.NewMockSpotRepo(t)

	svc := NewFacilityService(facilityRepo, spotRepo, nil, 30*time.Second, newTestLogger(t))

	facilityRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrFacilityNotFound)

	_, err := svc.ListSpots(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrFacilityNotFound)
	spotRepo.AssertNotCalled(t, "ListByFacility", mock.Anything, mock.Anything)
}

func TestFacilityService_List(t *testing.T) {
	facilityRepo := mocks.NewMockFacilityRepo(t)
	spotRepo := mocks.NewMockSpotRepo(t)

	svc := NewFacilityService(facilityRepo, spotRepo, nil, 30*time.Second, newTestLogger(t))

	facilities := []*domain.Facility{{ID: "f1", Name: "Central"}}
	facilityRepo.EXPECT().List(mock.Anything).Return(facilities, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, facilities, got)
}
