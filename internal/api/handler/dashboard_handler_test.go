package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-system/internal/core/domain"
	"github.com/stockroom/inventory-system/internal/core/ports"
)

type stubDashboardService struct {
	stats   ports.AdminStats
	view    *ports.StaffView
	viewErr error
}

func (s *stubDashboardService) AdminStats(context.Context) ports.AdminStats {
	return s.stats
}

func (s *stubDashboardService) StaffView(context.Context) (*ports.StaffView, error) {
	return s.view, s.viewErr
}

func authedContext(e *echo.Echo, rec *httptest.ResponseRecorder, role domain.Role) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, rec)
	c.Set("user_id", "u-1")
	c.Set("username", "alice")
	c.Set("role", role)
	return c
}

func TestDashboardHandler_Admin(t *testing.T) {
	e := echo.New()
	stub := &stubDashboardService{stats: ports.AdminStats{TotalProducts: 4, TotalStocks: 8, TotalOrders: 2}}
	handler := NewDashboardHandler(stub)

	rec := httptest.NewRecorder()
	c := authedContext(e, rec, domain.RoleAdmin)

	if err := handler.Admin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	stats, ok := resp["stats"].(map[string]any)
	if !ok {
		t.Fatalf("expected stats in response")
	}
	if stats["totalProducts"] != float64(4) || stats["totalStocks"] != float64(8) || stats["totalOrders"] != float64(2) {
		t.Fatalf("unexpected stats payload: %+v", stats)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestDashboardHandler_Admin_DegradedShapeUnchanged(t *testing.T) {
	e := echo.New()
	stub := &stubDashboardService{stats: ports.AdminStats{Degraded: true}}
	handler := NewDashboardHandler(stub)

	rec := httptest.NewRecorder()
	c := authedContext(e, rec, domain.RoleAdmin)

	if err := handler.Admin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("degraded stats must still render 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	stats := resp["stats"].(map[string]any)
	if stats["totalProducts"] != float64(0) {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
	if _, leaked := stats["Degraded"]; leaked {
		t.Fatalf("degraded flag must not appear in the payload")
	}
}

func TestDashboardHandler_Admin_NoIdentity(t *testing.T) {
	e := echo.New()
	handler := NewDashboardHandler(&stubDashboardService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := handler.Admin(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestDashboardHandler_Staff(t *testing.T) {
	e := echo.New()
	stub := &stubDashboardService{view: &ports.StaffView{
		Categories: []domain.Category{{ID: "c1", Name: "drinks"}},
		Products:   []domain.Product{{ID: "p1", Name: "cola", Stock: 3}},
	}}
	handler := NewDashboardHandler(stub)

	rec := httptest.NewRecorder()
	c := authedContext(e, rec, domain.RoleStaff)

	if err := handler.Staff(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	categories, ok := resp["categories"].([]any)
	if !ok || len(categories) != 1 {
		t.Fatalf("unexpected categories: %+v", resp["categories"])
	}
	products, ok := resp["products"].([]any)
	if !ok || len(products) != 1 {
		t.Fatalf("unexpected products: %+v", resp["products"])
	}
}

func TestDashboardHandler_Staff_ReadFailureIsHardError(t *testing.T) {
	e := echo.New()
	stub := &stubDashboardService{viewErr: errors.New("backend down")}
	handler := NewDashboardHandler(stub)

	rec := httptest.NewRecorder()
	c := authedContext(e, rec, domain.RoleStaff)

	if err := handler.Staff(c); err == nil {
		t.Fatalf("expected error to propagate to the central handler")
	}
}
