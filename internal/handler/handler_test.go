package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/ACX0S/Spatioo-sub001/internal/handler/dto"
	hmocks "github.com/ACX0S/Spatioo-sub001/internal/handler/mocks"
	"github.com/ACX0S/Spatioo-sub001/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testUserID = "caller-1"

func setupRouter(t *testing.T) (*hmocks.MockAuthSvc, *hmocks.MockBookingSvc, *hmocks.MockFacilitySvc, *hmocks.MockNotificationSvc, http.Handler) {
	t.Helper()
	authSvc := hmocks.NewMockAuthSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	facilitySvc := hmocks.NewMockFacilitySvc(t)
	notificationSvc := hmocks.NewMockNotificationSvc(t)

	h := NewHandler(authSvc, bookingSvc, facilitySvc, notificationSvc)

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, testUserID)
		c.Next()
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/estacionamentos", h.ListFacilities)
		api.GET("/estacionamentos/:id/vagas", h.ListFacilitySpots)
		api.GET("/estacionamentos/:id/bookings", h.ListFacilityBookings)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListMyBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/accept", h.AcceptBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/arrival", h.ConfirmArrival)
		api.POST("/bookings/:id/departure", h.ConfirmDeparture)
		api.GET("/notifications", h.ListNotifications)
		api.POST("/notifications/:id/read", h.MarkNotificationRead)
	}
	r.POST("/internal/expire", h.ExpirePending)

	return authSvc, bookingSvc, facilitySvc, notificationSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	authSvc, _, _, _, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Ana",
		Email:     "ana@example.com",
		Role:      domain.RoleDriver,
		CreatedAt: time.Now(),
	}
	authSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ana", resp.Name)
}

func TestHandler_Register_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]string{"name": "Ana"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	authSvc, _, _, _, r := setupRouter(t)

	authSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	authSvc, _, _, _, r := setupRouter(t)

	user := &domain.User{ID: "u1", Name: "Ana", Email: "ana@example.com", CreatedAt: time.Now()}
	authSvc.EXPECT().Login(mock.Anything, "ana@example.com", "hunter2hunter2").Return("token-123", user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	authSvc, _, _, _, r := setupRouter(t)

	authSvc.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Bookings ---

func testBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		UserID:     testUserID,
		FacilityID: uuid.New().String(),
		SpotNumber: "A-01",
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  "08:00",
		EndTime:    "10:00",
		Price:      20,
		Status:     domain.BookingStatusPending,
		CreatedAt:  time.Now(),
		ExpiresAt:  time.Now().Add(15 * time.Minute),
	}
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	booking := testBooking(uuid.New().String())
	bookingSvc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(input domain.CreateBookingInput) bool {
		return input.UserID == testUserID && input.SpotNumber == "A-01"
	})).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		FacilityID: booking.FacilityID,
		SpotNumber: "A-01",
		Date:       "2026-09-01",
		StartTime:  "08:00",
		EndTime:    "10:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusPending), resp.Status)
	assert.Equal(t, "2026-09-01", resp.Date)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		FacilityID: uuid.New().String(),
		SpotNumber: "A-01",
		Date:       "01/09/2026",
		StartTime:  "08:00",
		EndTime:    "10:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_SpotUnavailable(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSpotUnavailable)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		FacilityID: uuid.New().String(),
		SpotNumber: "A-01",
		Date:       "2026-09-01",
		StartTime:  "08:00",
		EndTime:    "10:00",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AcceptBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Accept(mock.Anything, testUserID, id).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/accept", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(domain.BookingStatusReserved))
}

func TestHandler_AcceptBooking_Forbidden(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Accept(mock.Anything, testUserID, id).Return(domain.ErrUnauthorized)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/accept", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_AcceptBooking_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/not-a-uuid/accept", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RejectBooking_LostRace(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Reject(mock.Anything, testUserID, id).Return(domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/reject", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmArrival_Advanced(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().ConfirmArrival(mock.Anything, testUserID, id).Return(true, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/arrival", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Advanced)
	assert.Equal(t, string(domain.BookingStatusOccupied), resp.Status)
}

func TestHandler_ConfirmDeparture_Waiting(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().ConfirmDeparture(mock.Anything, testUserID, id).Return(false, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/departure", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Advanced)
	assert.Equal(t, string(domain.BookingStatusOccupied), resp.Status)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, testUserID, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListMyBookings(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().ListByUser(mock.Anything, testUserID).Return([]*domain.Booking{testBooking("b1")}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Facilities ---

func TestHandler_ListFacilities(t *testing.T) {
	_, _, facilitySvc, _, r := setupRouter(t)

	facilitySvc.EXPECT().List(mock.Anything).Return([]*domain.Facility{
		{ID: uuid.New().String(), Name: "Central", PricePerHour: 10},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/estacionamentos", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.FacilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Central", resp[0].Name)
}

func TestHandler_ListFacilitySpots(t *testing.T) {
	_, _, facilitySvc, _, r := setupRouter(t)

	id := uuid.New().String()
	facilitySvc.EXPECT().ListSpots(mock.Anything, id).Return([]*domain.Spot{
		{ID: "s1", FacilityID: id, Number: "A-01", Status: domain.SpotStatusAvailable},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/estacionamentos/"+id+"/vagas", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SpotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, string(domain.SpotStatusAvailable), resp[0].Status)
}

func TestHandler_ListFacilityBookings_Forbidden(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().ListByFacility(mock.Anything, testUserID, id).Return(nil, domain.ErrUnauthorized)

	w := doJSON(t, r, http.MethodGet, "/api/estacionamentos/"+id+"/bookings", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Notifications ---

func TestHandler_ListNotifications(t *testing.T) {
	_, _, _, notificationSvc, r := setupRouter(t)

	notificationSvc.EXPECT().ListByUser(mock.Anything, testUserID).Return([]*domain.Notification{
		{ID: "n1", UserID: testUserID, Type: domain.NotificationBookingRequested, Title: "Nova reserva", CreatedAt: time.Now()},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/notifications", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Nova reserva", resp[0].Title)
}

func TestHandler_MarkNotificationRead_NotFound(t *testing.T) {
	_, _, _, notificationSvc, r := setupRouter(t)

	id := uuid.New().String()
	notificationSvc.EXPECT().MarkRead(mock.Anything, id, testUserID).Return(domain.ErrNotificationNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/notifications/"+id+"/read", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Internal ---

func TestHandler_ExpirePending(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().ExpirePending(mock.Anything).Return(domain.SweepReport{Expired: 3}, nil)

	w := doJSON(t, r, http.MethodPost, "/internal/expire", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var report domain.SweepReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 3, report.Expired)
}
