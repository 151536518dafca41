package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/ACX0S/Spatioo-sub001/internal/handler/dto"
	"github.com/ACX0S/Spatioo-sub001/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Accept(ctx context.Context, callerID, bookingID string) error
	Reject(ctx context.Context, callerID, bookingID string) error
	Cancel(ctx context.Context, callerID, bookingID string) error
	ConfirmArrival(ctx context.Context, callerID, bookingID string) (bool, error)
	ConfirmDeparture(ctx context.Context, callerID, bookingID string) (bool, error)
	ExpirePending(ctx context.Context) (domain.SweepReport, error)
	GetByID(ctx context.Context, callerID, bookingID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByFacility(ctx context.Context, callerID, facilityID string) ([]*domain.Booking, error)
}

type FacilitySvc interface {
	List(ctx context.Context) ([]*domain.Facility, error)
	ListSpots(ctx context.Context, facilityID string) ([]*domain.Spot, error)
}

type NotificationSvc interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type Handler struct {
	authService         AuthSvc
	bookingService      BookingSvc
	facilityService     FacilitySvc
	notificationService NotificationSvc
}

func NewHandler(authService AuthSvc, bookingService BookingSvc, facilityService FacilitySvc, notificationService NotificationSvc) *Handler {
	return &Handler{
		authService:         authService,
		bookingService:      bookingService,
		facilityService:     facilityService,
		notificationService: notificationService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		Role:           req.Role,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateBookingInput{
		UserID:     c.GetString(middleware.UserIDKey),
		FacilityID: req.FacilityID,
		SpotNumber: req.SpotNumber,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), c.GetString(middleware.UserIDKey), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) AcceptBooking(c *ginext.Context) {
	h.decide(c, h.bookingService.Accept, domain.BookingStatusReserved)
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	h.decide(c, h.bookingService.Reject, domain.BookingStatusRejected)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.decide(c, h.bookingService.Cancel, domain.BookingStatusCancelled)
}

func (h *Handler) decide(c *ginext.Context, op func(ctx context.Context, callerID, bookingID string) error, result domain.BookingStatus) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := op(c.Request.Context(), c.GetString(middleware.UserIDKey), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(result)})
}

func (h *Handler) ConfirmArrival(c *ginext.Context) {
	h.confirm(c, h.bookingService.ConfirmArrival, domain.BookingStatusOccupied, domain.BookingStatusReserved)
}

func (h *Handler) ConfirmDeparture(c *ginext.Context) {
	h.confirm(c, h.bookingService.ConfirmDeparture, domain.BookingStatusCompleted, domain.BookingStatusOccupied)
}

func (h *Handler) confirm(c *ginext.Context, op func(ctx context.Context, callerID, bookingID string) (bool, error), advancedTo, waitingIn domain.BookingStatus) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	advanced, err := op(c.Request.Context(), c.GetString(middleware.UserIDKey), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := waitingIn
	if advanced {
		status = advancedTo
	}

	c.JSON(http.StatusOK, dto.ConfirmationResponse{
		Status:   string(status),
		Advanced: advanced,
	})
}

// Facilities

func (h *Handler) ListFacilities(c *ginext.Context) {
	facilities, err := h.facilityService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		resp = append(resp, dto.ToFacilityResponse(f))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListFacilitySpots(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid facility id"})
		return
	}

	spots, err := h.facilityService.ListSpots(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SpotResponse, 0, len(spots))
	for _, s := range spots {
		resp = append(resp, dto.ToSpotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListFacilityBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid facility id"})
		return
	}

	bookings, err := h.bookingService.ListByFacility(c.Request.Context(), c.GetString(middleware.UserIDKey), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Notifications

func (h *Handler) ListNotifications(c *ginext.Context) {
	notifications, err := h.notificationService.ListByUser(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) MarkNotificationRead(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, c.GetString(middleware.UserIDKey)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "read"})
}

// Internal

// ExpirePending runs one expiration sweep on demand. The periodic scheduler
// calls the service directly; this endpoint exists for external cron setups.
func (h *Handler) ExpirePending(c *ginext.Context) {
	report, err := h.bookingService.ExpirePending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrSpotNotFound),
		errors.Is(err, domain.ErrFacilityNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSpotUnavailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
