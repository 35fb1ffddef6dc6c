package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-system/internal/api/metrics"
	"github.com/stockroom/inventory-system/internal/api/middleware"
	"github.com/stockroom/inventory-system/internal/core/domain"
	"github.com/stockroom/inventory-system/internal/core/ports"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	authService ports.AuthService
	carrier     middleware.Carrier
	sessionTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, carrier middleware.Carrier, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, carrier: carrier, sessionTTL: sessionTTL}
}

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"role"`
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		status, msg := http.StatusInternalServerError, "internal server error"
		result := "error"
		switch err {
		case domain.ErrUserExists:
			status, msg, result = http.StatusConflict, err.Error(), "conflict"
		case domain.ErrInvalidInput:
			status, msg, result = http.StatusBadRequest, err.Error(), "invalid"
		}
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
		return c.JSON(status, map[string]string{"error": msg})
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "username registered successfully"})
}

// Login authenticates a user, stores the session token in the credential
// carrier and redirects to the dashboard matching the user's role.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Param        body  body  loginRequest  true  "Login credentials"
// @Success      303
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		status, msg := http.StatusInternalServerError, "internal server error"
		result := "error"
		switch err {
		case domain.ErrUserNotFound:
			status, msg, result = http.StatusNotFound, err.Error(), "not_found"
		case domain.ErrInvalidCredentials:
			status, msg, result = http.StatusUnauthorized, err.Error(), "unauthorized"
		}
		metrics.LoginsTotal.WithLabelValues(result).Inc()
		return c.JSON(status, map[string]string{"error": msg})
	}

	h.carrier.Write(c, token, h.sessionTTL)
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	if user.Role == domain.RoleAdmin {
		return c.Redirect(http.StatusSeeOther, middleware.PathAdminDashboard)
	}
	return c.Redirect(http.StatusSeeOther, middleware.PathStaffDashboard)
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; invalidation is purely client-side.
//
// @Summary      Logout
// @Tags         auth
// @Success      303
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.carrier.Clear(c)
	return c.Redirect(http.StatusSeeOther, middleware.PathLogin)
}
