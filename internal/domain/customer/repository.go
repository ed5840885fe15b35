package customer

import (
	"context"
)

// Repository defines the persistence operations for customers
type Repository interface {
	// Create persists a new customer and fills in the store-assigned id
	Create(ctx context.Context, c *Customer) error

	// FindByID fetches a customer by id, returning ErrNotFound when absent
	FindByID(ctx context.Context, id int64) (*Customer, error)

	// List returns customers ordered by name with pagination
	List(ctx context.Context, limit, offset int) ([]*Customer, error)

	// ListAll returns every customer (used by the report summarizer)
	ListAll(ctx context.Context) ([]*Customer, error)

	// Search returns customers whose name or phone contains the query
	Search(ctx context.Context, query string) ([]*Customer, error)

	// Exists reports whether a customer with the given id exists
	Exists(ctx context.Context, id int64) (bool, error)

	// Count returns the total number of customers
	Count(ctx context.Context) (int, error)
}
