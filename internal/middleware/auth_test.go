package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubValidator struct {
	userID string
	role   string
	err    error
}

func (s stubValidator) ValidateToken(string) (string, string, error) {
	return s.userID, s.role, s.err
}

func setupAuthRouter(v tokenValidator) http.Handler {
	r := ginext.New("test")
	r.GET("/protected", Auth(v), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{
			"user_id": c.GetString(UserIDKey),
			"role":    c.GetString(UserRoleKey),
		})
	})
	return r
}

func TestAuth_MissingHeader(t *testing.T) {
	r := setupAuthRouter(stubValidator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := setupAuthRouter(stubValidator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	r := setupAuthRouter(stubValidator{err: errors.New("expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupAuthRouter(stubValidator{userID: "u1", role: "motorista"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
	assert.Contains(t, w.Body.String(), "motorista")
}
