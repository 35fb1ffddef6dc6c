package ports

import (
	"context"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// CatalogRepository defines read-only persistence operations over the
// product, category and order collections. The dashboard layer never
// mutates any of them.
type CatalogRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	// SumProductStock totals the stock field across all products,
	// counting a missing stock value as zero.
	SumProductStock(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
