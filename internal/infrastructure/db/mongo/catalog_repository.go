package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

const (
	categoriesCollection = "categories"
	productsCollection   = "products"
	ordersCollection     = "orders"
)

// CatalogRepository reads the product, category and order collections for
// the dashboards. It never writes.
type CatalogRepository struct {
	categories *mongo.Collection
	products   *mongo.Collection
	orders     *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		categories: db.Collection(categoriesCollection),
		products:   db.Collection(productsCollection),
		orders:     db.Collection(ordersCollection),
	}
}

func (r *CatalogRepository) CountProducts(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// SumProductStock totals stock across all products server-side. $ifNull
// folds documents with a missing stock field into the sum as zero.
func (r *CatalogRepository) SumProductStock(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{
				{Key: "$sum", Value: bson.D{
					{Key: "$ifNull", Value: bson.A{"$stock", 0}},
				}},
			}},
		}}},
	}

	cursor, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum product stock: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("sum product stock: %w", err)
	}
	if len(results) == 0 {
		// empty collection
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *CatalogRepository) CountOrders(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
