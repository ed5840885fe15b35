package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
)

// CustomerRepository implements customer.Repository over PostgreSQL
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{db: db}
}

// Create implements customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO customers (name, phone, address, email, id_document, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		c.Name, c.Phone, c.Address, c.Email, c.IDDocument, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

// FindByID implements customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, phone, COALESCE(address, ''), COALESCE(email, ''), COALESCE(id_document, ''), created_at
		 FROM customers WHERE id = $1`, id)

	c := &customer.Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Email, &c.IDDocument, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return c, nil
}

// List implements customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, phone, COALESCE(address, ''), COALESCE(email, ''), COALESCE(id_document, ''), created_at
		 FROM customers ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// ListAll implements customer.Repository.ListAll
func (r *CustomerRepository) ListAll(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, phone, COALESCE(address, ''), COALESCE(email, ''), COALESCE(id_document, ''), created_at
		 FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Search implements customer.Repository.Search
func (r *CustomerRepository) Search(ctx context.Context, query string) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, phone, COALESCE(address, ''), COALESCE(email, ''), COALESCE(id_document, ''), created_at
		 FROM customers
		 WHERE name ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%'
		 ORDER BY name`, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Exists implements customer.Repository.Exists
func (r *CustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return exists, nil
}

// Count implements customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func scanCustomers(rows pgx.Rows) ([]*customer.Customer, error) {
	var customers []*customer.Customer
	for rows.Next() {
		c := &customer.Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Email, &c.IDDocument, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
