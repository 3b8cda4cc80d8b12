package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mlukash/todoshare/internal/server/auth"
)

const userIDKey = "userID"

// requireAuth verifies the Authorization: Bearer <token> header and stores
// the caller's user id in the request context. Failures are logged before
// the 401 is sent.
func (s *HTTPServer) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.logger.Warn(c.Request().Context(), "authentication failed", "reason", "missing bearer token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication failed"})
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Warn(c.Request().Context(), "authentication failed", "error", err.Error())
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication failed"})
		}

		c.Set(userIDKey, claims.UserID)
		return next(c)
	}
}

// callerID returns the authenticated user id stored by requireAuth.
func callerID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
