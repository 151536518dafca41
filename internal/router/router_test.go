package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func serveOK(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

func (stubHandler) Register(c *ginext.Context)             { serveOK(c) }
func (stubHandler) Login(c *ginext.Context)                { serveOK(c) }
func (stubHandler) CreateBooking(c *ginext.Context)        { serveOK(c) }
func (stubHandler) GetBooking(c *ginext.Context)           { serveOK(c) }
func (stubHandler) ListMyBookings(c *ginext.Context)       { serveOK(c) }
func (stubHandler) AcceptBooking(c *ginext.Context)        { serveOK(c) }
func (stubHandler) RejectBooking(c *ginext.Context)        { serveOK(c) }
func (stubHandler) CancelBooking(c *ginext.Context)        { serveOK(c) }
func (stubHandler) ConfirmArrival(c *ginext.Context)       { serveOK(c) }
func (stubHandler) ConfirmDeparture(c *ginext.Context)     { serveOK(c) }
func (stubHandler) ListFacilities(c *ginext.Context)       { serveOK(c) }
func (stubHandler) ListFacilitySpots(c *ginext.Context)    { serveOK(c) }
func (stubHandler) ListFacilityBookings(c *ginext.Context) { serveOK(c) }
func (stubHandler) ListNotifications(c *ginext.Context)    { serveOK(c) }
func (stubHandler) MarkNotificationRead(c *ginext.Context) { serveOK(c) }
func (stubHandler) ExpirePending(c *ginext.Context)        { serveOK(c) }

func requireToken(c *ginext.Context) {
	if c.GetHeader("Authorization") != "Bearer good-token" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

func do(t *testing.T, r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestInitRouter_HealthIsPublic(t *testing.T) {
	r := InitRouter("test", stubHandler{}, requireToken)

	w := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitRouter_AuthRoutesArePublic(t *testing.T) {
	r := InitRouter("test", stubHandler{}, requireToken)

	w := do(t, r, http.MethodPost, "/api/auth/login", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitRouter_BookingRoutesRequireToken(t *testing.T) {
	r := InitRouter("test", stubHandler{}, requireToken)

	w := do(t, r, http.MethodPost, "/api/bookings", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/api/bookings", "good-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitRouter_ExpireTriggerRequiresToken(t *testing.T) {
	r := InitRouter("test", stubHandler{}, requireToken)

	w := do(t, r, http.MethodPost, "/internal/expire", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/internal/expire", "good-token")
	assert.Equal(t, http.StatusOK, w.Code)
}
