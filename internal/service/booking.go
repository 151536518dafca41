package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/ACX0S/Spatioo-sub001/internal/service/ports"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// timeLayout is the wall-clock format of a booking window's bounds.
const timeLayout = "15:04"

type BookingService struct {
	bookingRepo  ports.BookingRepo
	facilityRepo ports.FacilityRepo
	userRepo     ports.UserRepo
	notifier     ports.BookingNotifier
	cache        *redis.Client
	defaultTTL   time.Duration
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	facilityRepo ports.FacilityRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	cache *redis.Client,
	defaultTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		cache:        cache,
		defaultTTL:   defaultTTL,
		logger:       logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	facility, err := s.facilityRepo.GetByID(ctx, input.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("check facility: %w", err)
	}

	if _, err = s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	hours, err := windowHours(input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}
	if input.SpotNumber == "" {
		return nil, fmt.Errorf("%w: spot number is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	ttl := facility.ReservationTTL
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		UserID:     input.UserID,
		FacilityID: input.FacilityID,
		SpotNumber: input.SpotNumber,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Price:      math.Round(facility.PricePerHour*hours*100) / 100,
		Status:     domain.BookingStatusPending,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.invalidateSpots(ctx, input.FacilityID)

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("estacionamento_id", input.FacilityID),
		logger.String("spot_number", input.SpotNumber),
		logger.String("user_id", input.UserID),
	)

	go s.notifier.BookingRequested(context.WithoutCancel(ctx), booking, facility)

	return booking, nil
}

// Accept is an owner-only decision on a pending booking.
func (s *BookingService) Accept(ctx context.Context, callerID, bookingID string) error {
	booking, facility, err := s.load(ctx, bookingID)
	if err != nil {
		return err
	}
	if facility.OwnerID != callerID {
		return domain.ErrUnauthorized
	}

	if err = s.bookingRepo.Accept(ctx, bookingID); err != nil {
		return err
	}

	s.logger.Info("booking accepted",
		logger.String("booking_id", bookingID),
		logger.String("owner_id", callerID),
	)

	go s.notifier.BookingAccepted(context.WithoutCancel(ctx), booking, facility)

	return nil
}

// Reject releases the spot and notifies the requester.
func (s *BookingService) Reject(ctx context.Context, callerID, bookingID string) error {
	booking, facility, err := s.load(ctx, bookingID)
	if err != nil {
		return err
	}
	if facility.OwnerID != callerID {
		return domain.ErrUnauthorized
	}

	if err = s.bookingRepo.Reject(ctx, bookingID); err != nil {
		return err
	}

	s.invalidateSpots(ctx, booking.FacilityID)

	s.logger.Info("booking rejected",
		logger.String("booking_id", bookingID),
		logger.String("owner_id", callerID),
	)

	go s.notifier.BookingRejected(context.WithoutCancel(ctx), booking, facility)

	return nil
}

// Cancel may be called by either party while the booking is non-terminal.
func (s *BookingService) Cancel(ctx context.Context, callerID, bookingID string) error {
	booking, facility, err := s.load(ctx, bookingID)
	if err != nil {
		return err
	}
	if _, err = partyOf(callerID, booking, facility); err != nil {
		return err
	}

	if err = s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		return err
	}

	s.invalidateSpots(ctx, booking.FacilityID)

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("caller_id", callerID),
	)

	go s.notifier.BookingCancelled(context.WithoutCancel(ctx), booking, facility)

	return nil
}

// ConfirmArrival records the caller's side of the arrival handshake and
// reports whether the booking advanced to ocupada.
func (s *BookingService) ConfirmArrival(ctx context.Context, callerID, bookingID string) (bool, error) {
	booking, facility, err := s.load(ctx, bookingID)
	if err != nil {
		return false, err
	}
	side, err := partyOf(callerID, booking, facility)
	if err != nil {
		return false, err
	}

	advanced, err := s.bookingRepo.ConfirmArrival(ctx, bookingID, side)
	if err != nil {
		return false, err
	}

	if advanced {
		s.invalidateSpots(ctx, booking.FacilityID)
		s.logger.Info("occupancy started",
			logger.String("booking_id", bookingID),
		)
		go s.notifier.OccupancyStarted(context.WithoutCancel(ctx), booking, facility)
	}

	return advanced, nil
}

// ConfirmDeparture is symmetric to ConfirmArrival; advancing completes the
// booking and returns the spot to disponivel.
func (s *BookingService) ConfirmDeparture(ctx context.Context, callerID, bookingID string) (bool, error) {
	booking, facility, err := s.load(ctx, bookingID)
	if err != nil {
		return false, err
	}
	side, err := partyOf(callerID, booking, facility)
	if err != nil {
		return false, err
	}

	advanced, err := s.bookingRepo.ConfirmDeparture(ctx, bookingID, side)
	if err != nil {
		return false, err
	}

	if advanced {
		s.invalidateSpots(ctx, booking.FacilityID)
		s.logger.Info("booking completed",
			logger.String("booking_id", bookingID),
		)
		go s.notifier.BookingCompleted(context.WithoutCancel(ctx), booking, facility)
	}

	return advanced, nil
}

// ExpirePending reclaims pending bookings whose deadline has passed. A
// booking that lost the race to an owner decision is skipped silently; any
// other failure is counted without aborting the sweep.
func (s *BookingService) ExpirePending(ctx context.Context) (domain.SweepReport, error) {
	due, err := s.bookingRepo.ListDueForExpiry(ctx)
	if err != nil {
		return domain.SweepReport{}, fmt.Errorf("list due bookings: %w", err)
	}

	var report domain.SweepReport
	var expired []*domain.Booking
	for _, b := range due {
		if err := s.bookingRepo.Expire(ctx, b.ID); err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				continue
			}
			report.Failed++
			s.logger.Error("failed to expire booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		report.Expired++
		s.invalidateSpots(ctx, b.FacilityID)
		expired = append(expired, b)
	}

	if report.Expired > 0 {
		s.logger.Info("pending bookings expired",
			logger.Int("count", report.Expired),
		)
		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return report, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		facility, err := s.facilityRepo.GetByID(ctx, b.FacilityID)
		if err != nil {
			s.logger.Error("failed to get facility for expiry notification",
				logger.String("estacionamento_id", b.FacilityID),
			)
			continue
		}
		s.notifier.BookingExpired(ctx, b, facility)
	}
}

func (s *BookingService) GetByID(ctx context.Context, callerID, bookingID string) (*domain.Booking, error) {
	booking, facility, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, err = partyOf(callerID, booking, facility); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// ListByFacility is the owner's inbox of bookings for one facility.
func (s *BookingService) ListByFacility(ctx context.Context, callerID, facilityID string) ([]*domain.Booking, error) {
	facility, err := s.facilityRepo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if facility.OwnerID != callerID {
		return nil, domain.ErrUnauthorized
	}
	return s.bookingRepo.ListByFacility(ctx, facilityID)
}

func (s *BookingService) load(ctx context.Context, bookingID string) (*domain.Booking, *domain.Facility, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking: %w", err)
	}

	facility, err := s.facilityRepo.GetByID(ctx, booking.FacilityID)
	if err != nil {
		return nil, nil, fmt.Errorf("get facility: %w", err)
	}

	return booking, facility, nil
}

func (s *BookingService) invalidateSpots(ctx context.Context, facilityID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, spotsCacheKey(facilityID)).Err(); err != nil {
		s.logger.Warn("failed to invalidate spots cache",
			logger.String("estacionamento_id", facilityID),
			logger.String("error", err.Error()),
		)
	}
}

// partyOf resolves the caller's role on this booking: the requester or the
// facility owner. Anyone else is unauthorized.
func partyOf(callerID string, b *domain.Booking, f *domain.Facility) (domain.Party, error) {
	switch callerID {
	case b.UserID:
		return domain.PartyRequester, nil
	case f.OwnerID:
		return domain.PartyOwner, nil
	}
	return "", domain.ErrUnauthorized
}

func windowHours(start, end string) (float64, error) {
	from, err := time.Parse(timeLayout, start)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid start_time, expected HH:MM", domain.ErrValidation)
	}
	to, err := time.Parse(timeLayout, end)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid end_time, expected HH:MM", domain.ErrValidation)
	}
	if !to.After(from) {
		return 0, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}
	return to.Sub(from).Hours(), nil
}
