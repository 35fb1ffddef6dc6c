package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-system/internal/api/metrics"
	"github.com/stockroom/inventory-system/internal/core/auth"
)

// TokenVerifier validates a raw session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Session validates the token presented by the carrier and injects the
// caller's identity into the request context. A missing or invalid token
// clears the stored credential and redirects to the login page instead of
// surfacing an error; verification internals never reach the client. Role
// checks are left to RequireRole.
func Session(codec TokenVerifier, carrier Carrier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := carrier.Read(c)
			if token == "" {
				metrics.SessionRejectionsTotal.WithLabelValues("missing_token").Inc()
				return c.Redirect(http.StatusFound, PathLogin)
			}

			claims, err := codec.Verify(token)
			if err != nil {
				metrics.SessionRejectionsTotal.WithLabelValues("invalid_token").Inc()
				carrier.Clear(c)
				return c.Redirect(http.StatusFound, PathLogin)
			}

			c.Set("user_id", claims.Subject)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
