package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer"

	// UserIDKey and UserRoleKey hold the resolved caller identity in the
	// request context.
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
)

type tokenValidator interface {
	ValidateToken(token string) (string, string, error)
}

// Auth resolves the Bearer token to a caller identity and aborts with 401
// when it cannot.
func Auth(validator tokenValidator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing authorization header"})
			return
		}

		fields := strings.Fields(header)
		if len(fields) != 2 || !strings.EqualFold(fields[0], bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid authorization header"})
			return
		}

		userID, role, err := validator.ValidateToken(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserRoleKey, role)

		c.Next()
	}
}
