package product

import (
	"context"
	"time"
)

// Repository defines the persistence operations for products
type Repository interface {
	// Create persists a new product and fills in the store-assigned id
	Create(ctx context.Context, p *Product) error

	// FindByID fetches a product by id, returning ErrNotFound when absent
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindByName fetches a product by exact name, returning ErrNotFound when
	// absent. Names are not guaranteed unique; the first match wins.
	FindByName(ctx context.Context, name string) (*Product, error)

	// List returns products ordered by name with pagination
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// ListAll returns every product (used by the report summarizer)
	ListAll(ctx context.Context) ([]*Product, error)

	// ListLowStock returns products whose stock is at or below the reorder level
	ListLowStock(ctx context.Context) ([]*Product, error)

	// ListExpiringBefore returns products with an expiry date on or before the cutoff
	ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]*Product, error)

	// AddStock increments the stock quantity of a product (refill)
	AddStock(ctx context.Context, id int64, quantity int) error

	// Count returns the total number of products
	Count(ctx context.Context) (int, error)
}
