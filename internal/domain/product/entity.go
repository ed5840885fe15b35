package product

import (
	"errors"
	"time"
)

var (
	ErrEmptyName     = errors.New("product name cannot be empty")
	ErrNegativePrice = errors.New("product price cannot be negative")
	ErrNotFound      = errors.New("product not found")
)

// Product represents a catalog item. Piece-sold goods are billed from Price;
// weight-sold goods (IsWeightBased) are billed from PricePerKg and a recorded
// weight. CostPrice of 0 means the purchase cost is unknown.
type Product struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Barcode       string     `json:"barcode,omitempty"`
	Category      string     `json:"category,omitempty"`
	Unit          string     `json:"unit,omitempty"`
	Price         float64    `json:"price"`
	CostPrice     float64    `json:"cost_price"`
	PricePerKg    float64    `json:"price_per_kg,omitempty"`
	IsWeightBased bool       `json:"is_weight_based"`
	StockQuantity int        `json:"stock_quantity"`
	ReorderLevel  int        `json:"reorder_level"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewProduct creates a new product
func NewProduct(name string, price float64) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	now := time.Now()
	return &Product{
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsLowStock reports whether the on-hand quantity has fallen to or below the
// reorder threshold
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.ReorderLevel
}

// ExpiresWithin reports whether the product has an expiry date on or before
// the given number of days from now
func (p *Product) ExpiresWithin(days int, now time.Time) bool {
	if p.ExpiryDate == nil {
		return false
	}
	return !p.ExpiryDate.After(now.AddDate(0, 0, days))
}

// DaysToExpiry returns the number of whole days until the expiry date.
// Already-expired products yield a negative value.
func (p *Product) DaysToExpiry(now time.Time) int {
	if p.ExpiryDate == nil {
		return 0
	}
	return int(p.ExpiryDate.Sub(now).Hours() / 24)
}
