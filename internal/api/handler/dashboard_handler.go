package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-system/internal/core/domain"
	"github.com/stockroom/inventory-system/internal/core/ports"
)

// DashboardHandler serves the role-gated dashboard payloads.
type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

type adminDashboardResponse struct {
	User  identity         `json:"user"`
	Stats ports.AdminStats `json:"stats"`
}

type staffDashboardResponse struct {
	User       identity          `json:"user"`
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
}

// Admin returns the aggregate inventory stats for the admin dashboard.
// Stats may be zeroed when the backend is unavailable; the response shape
// does not change.
//
// @Summary      Admin dashboard stats
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  adminDashboardResponse
// @Router       /admindashboard [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stats := h.dashboards.AdminStats(c.Request().Context())
	return c.JSON(http.StatusOK, adminDashboardResponse{User: user, Stats: stats})
}

// Staff returns the raw category and product listings for the staff
// dashboard.
//
// @Summary      Staff dashboard listings
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  staffDashboardResponse
// @Failure      500  {object}  map[string]string
// @Router       /staffdashboard [get]
func (h *DashboardHandler) Staff(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.dashboards.StaffView(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, staffDashboardResponse{
		User:       user,
		Categories: view.Categories,
		Products:   view.Products,
	})
}
