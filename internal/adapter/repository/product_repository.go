package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/product"
)

// ProductRepository implements product.Repository over PostgreSQL
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, COALESCE(barcode, ''), COALESCE(category, ''), COALESCE(unit, ''),
	price, cost_price, price_per_kg, is_weight_based, stock_quantity, reorder_level,
	expiry_date, created_at, updated_at`

// Create implements product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO products (name, barcode, category, unit, price, cost_price, price_per_kg,
			is_weight_based, stock_quantity, reorder_level, expiry_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id`,
		p.Name, p.Barcode, p.Category, p.Unit, p.Price, p.CostPrice, p.PricePerKg,
		p.IsWeightBased, p.StockQuantity, p.ReorderLevel, p.ExpiryDate, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// FindByID implements product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

// FindByName implements product.Repository.FindByName
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE LOWER(name) = LOWER($1)`, name)
	return scanProduct(row)
}

// List implements product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListAll implements product.Repository.ListAll
func (r *ProductRepository) ListAll(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListLowStock implements product.Repository.ListLowStock
func (r *ProductRepository) ListLowStock(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE stock_quantity <= reorder_level ORDER BY stock_quantity, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListExpiringBefore implements product.Repository.ListExpiringBefore
func (r *ProductRepository) ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE expiry_date IS NOT NULL AND expiry_date <= $1 ORDER BY expiry_date, name`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// AddStock implements product.Repository.AddStock
func (r *ProductRepository) AddStock(ctx context.Context, id int64, quantity int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET stock_quantity = stock_quantity + $2, updated_at = NOW() WHERE id = $1`,
		id, quantity)
	if err != nil {
		return fmt.Errorf("failed to add stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// Count implements product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	p := &product.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Barcode, &p.Category, &p.Unit,
		&p.Price, &p.CostPrice, &p.PricePerKg, &p.IsWeightBased, &p.StockQuantity, &p.ReorderLevel,
		&p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return p, nil
}

func scanProducts(rows pgx.Rows) ([]*product.Product, error) {
	var products []*product.Product
	for rows.Next() {
		p := &product.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Barcode, &p.Category, &p.Unit,
			&p.Price, &p.CostPrice, &p.PricePerKg, &p.IsWeightBased, &p.StockQuantity, &p.ReorderLevel,
			&p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
