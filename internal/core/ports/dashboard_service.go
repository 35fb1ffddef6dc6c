package ports

import (
	"context"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// AdminStats is the aggregate summary shown on the admin dashboard.
// Degraded is true when the numbers are zeroed because a backend read
// failed; it lets tests and callers tell "no data" apart from "no inventory"
// while the rendered payload stays identical.
type AdminStats struct {
	TotalProducts int64 `json:"totalProducts"`
	TotalStocks   int64 `json:"totalStocks"`
	TotalOrders   int64 `json:"totalOrders"`
	Degraded      bool  `json:"-"`
}

// StaffView is the raw listing shown on the staff dashboard.
type StaffView struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
}

// DashboardService computes the role-specific dashboard payloads.
type DashboardService interface {
	// AdminStats never fails: on any read error it returns zeroed stats
	// flagged as degraded so the dashboard still renders.
	AdminStats(ctx context.Context) AdminStats
	// StaffView propagates read failures to the caller.
	StaffView(ctx context.Context) (*StaffView, error)
}
