package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// RequireRole gates a destination on the authenticated role. A caller with
// the other recognised role is sent to their own dashboard rather than shown
// an error; an unrecognised role falls back to the login page.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			switch {
			case role == required:
				return next(c)
			case role == domain.RoleAdmin:
				return c.Redirect(http.StatusFound, PathAdminDashboard)
			case role == domain.RoleStaff:
				return c.Redirect(http.StatusFound, PathStaffDashboard)
			default:
				return c.Redirect(http.StatusFound, PathLogin)
			}
		}
	}
}
