package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// identity is the authenticated caller as seen by dashboard handlers.
type identity struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// ctxIdentity extracts the identity injected by the session middleware and
// fast-fails before any service call: a valid role proves the middleware ran.
func ctxIdentity(c echo.Context) (identity, error) {
	role, _ := c.Get("role").(domain.Role)
	if !role.Valid() {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("user_id").(string)
	username, _ := c.Get("username").(string)
	return identity{ID: id, Username: username, Role: role}, nil
}
