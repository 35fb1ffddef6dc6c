package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-system/internal/api/metrics"
	"github.com/stockroom/inventory-system/internal/core/ports"
)

// StatsCache abstracts the short-lived admin stats cache (Redis). Both
// operations are best-effort: a cache failure must never fail a dashboard.
type StatsCache interface {
	Get(ctx context.Context) (*ports.AdminStats, error)
	Set(ctx context.Context, stats ports.AdminStats) error
}

type dashboardService struct {
	catalog ports.CatalogRepository
	cache   StatsCache
	log     zerolog.Logger
}

// NewDashboardService returns a DashboardService. cache may be nil to
// disable stats caching.
func NewDashboardService(catalog ports.CatalogRepository, cache StatsCache, log zerolog.Logger) ports.DashboardService {
	return &dashboardService{catalog: catalog, cache: cache, log: log}
}

// AdminStats aggregates totals for the admin dashboard. Any backend failure
// degrades to zeroed stats rather than breaking the page; the cause is
// logged and counted so operators see it even though the user does not.
func (s *dashboardService) AdminStats(ctx context.Context) ports.AdminStats {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed, querying backend")
		} else if cached != nil {
			return *cached
		}
	}

	stats, err := s.collectStats(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("admin stats degraded to zero values")
		metrics.DashboardDegradedTotal.Inc()
		return ports.AdminStats{Degraded: true}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats
}

func (s *dashboardService) collectStats(ctx context.Context) (ports.AdminStats, error) {
	products, err := s.catalog.CountProducts(ctx)
	if err != nil {
		return ports.AdminStats{}, fmt.Errorf("count products: %w", err)
	}

	stocks, err := s.catalog.SumProductStock(ctx)
	if err != nil {
		return ports.AdminStats{}, fmt.Errorf("sum product stock: %w", err)
	}

	orders, err := s.catalog.CountOrders(ctx)
	if err != nil {
		return ports.AdminStats{}, fmt.Errorf("count orders: %w", err)
	}

	return ports.AdminStats{
		TotalProducts: products,
		TotalStocks:   stocks,
		TotalOrders:   orders,
	}, nil
}

// StaffView lists all categories and products. Unlike AdminStats, a read
// failure here is a hard error to the caller.
func (s *dashboardService) StaffView(ctx context.Context) (*ports.StaffView, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return &ports.StaffView{Categories: categories, Products: products}, nil
}
