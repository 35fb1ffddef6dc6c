package domain

import "time"

// DefaultProductImage is the fallback image path stored when a product is
// created without one.
const DefaultProductImage = "/default-food.png"

// Category groups products. Names are unique across the collection.
type Category struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Product is a sellable item tracked in inventory. CategoryID is optional:
// a product whose category record is missing must still load and count.
type Product struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	CategoryID string    `json:"category_id,omitempty" bson:"category_id,omitempty"`
	Price      float64   `json:"price" bson:"price"`
	Stock      int64     `json:"stock" bson:"stock"`
	Image      string    `json:"image" bson:"image"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
