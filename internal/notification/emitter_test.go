package notification

import (
	"context"
	"testing"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/ACX0S/Spatioo-sub001/internal/queue"
	"github.com/ACX0S/Spatioo-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEmitter(t *testing.T) (*mocks.MockNotificationRepo, *mocks.MockUserRepo, *Emitter) {
	t.Helper()
	log := newTestLogger(t)

	repo := mocks.NewMockNotificationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	publisher, err := queue.NewPublisher("", log) // disabled
	require.NoError(t, err)
	telegram, err := NewTelegramNotifier("", log) // disabled
	require.NoError(t, err)

	return repo, userRepo, NewEmitter(repo, userRepo, publisher, telegram, log)
}

func emitterFixtures() (*domain.Booking, *domain.Facility) {
	b := &domain.Booking{
		ID:         "b1",
		UserID:     "driver1",
		FacilityID: "f1",
		SpotNumber: "A-01",
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  "08:00",
		EndTime:    "10:00",
		Price:      20,
		Status:     domain.BookingStatusPending,
	}
	f := &domain.Facility{ID: "f1", OwnerID: "owner1", Name: "Central"}
	return b, f
}

func TestEmitter_BookingRequested_GoesToOwner(t *testing.T) {
	repo, userRepo, emitter := newEmitter(t)
	b, f := emitterFixtures()

	var record *domain.Notification
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, n *domain.Notification) {
		record = n
	}).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "owner1").Return(&domain.User{ID: "owner1"}, nil)

	emitter.BookingRequested(context.Background(), b, f)

	require.NotNil(t, record)
	assert.Equal(t, "owner1", record.UserID)
	assert.Equal(t, domain.NotificationBookingRequested, record.Type)
	assert.Equal(t, "b1", record.BookingID.String)
	assert.NotEmpty(t, record.Message)
}

func TestEmitter_BookingRejected_GoesToRequester(t *testing.T) {
	repo, userRepo, emitter := newEmitter(t)
	b, f := emitterFixtures()

	var record *domain.Notification
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, n *domain.Notification) {
		record = n
	}).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "driver1").Return(&domain.User{ID: "driver1"}, nil)

	emitter.BookingRejected(context.Background(), b, f)

	require.NotNil(t, record)
	assert.Equal(t, "driver1", record.UserID)
	assert.Equal(t, domain.NotificationBookingRejected, record.Type)
}

func TestEmitter_BookingCancelled_GoesToBothParties(t *testing.T) {
	repo, userRepo, emitter := newEmitter(t)
	b, f := emitterFixtures()

	recipients := map[string]bool{}
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, n *domain.Notification) {
		recipients[n.UserID] = true
	}).Return(nil).Times(2)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{}, nil)

	emitter.BookingCancelled(context.Background(), b, f)

	assert.True(t, recipients["driver1"])
	assert.True(t, recipients["owner1"])
}

func TestEventStatus_ReportsPostTransitionStatus(t *testing.T) {
	// The emitter receives the booking as it was loaded before the
	// transition; published events must carry the status it moved to.
	cases := []struct {
		typ  domain.NotificationType
		want domain.BookingStatus
	}{
		{domain.NotificationBookingRequested, domain.BookingStatusPending},
		{domain.NotificationBookingAccepted, domain.BookingStatusReserved},
		{domain.NotificationBookingRejected, domain.BookingStatusRejected},
		{domain.NotificationBookingExpired, domain.BookingStatusExpired},
		{domain.NotificationBookingCancelled, domain.BookingStatusCancelled},
		{domain.NotificationOccupancyStarted, domain.BookingStatusOccupied},
		{domain.NotificationBookingCompleted, domain.BookingStatusCompleted},
	}

	for _, tc := range cases {
		got := eventStatus(tc.typ, domain.BookingStatusPending)
		assert.Equal(t, tc.want, got, "type %s", tc.typ)
	}
}

func TestEmitter_PersistFailureDoesNotPanic(t *testing.T) {
	repo, userRepo, emitter := newEmitter(t)
	b, f := emitterFixtures()

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(assert.AnError)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{}, nil)

	assert.NotPanics(t, func() {
		emitter.BookingExpired(context.Background(), b, f)
	})
}
