package dto

import (
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/product"
)

// ProductRequest is the request body for creating a product
type ProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Barcode       string  `json:"barcode"`
	Category      string  `json:"category"`
	Unit          string  `json:"unit"`
	Price         float64 `json:"price"`
	CostPrice     float64 `json:"cost_price"`
	PricePerKg    float64 `json:"price_per_kg"`
	IsWeightBased bool    `json:"is_weight_based"`
	StockQuantity int     `json:"stock_quantity"`
	ReorderLevel  int     `json:"reorder_level"`
	ExpiryDate    string  `json:"expiry_date"` // YYYY-MM-DD, optional
}

// RefillRequest is the request body for a stock refill
type RefillRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ProductResponse is the response body for a product
type ProductResponse struct {
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
	IsLowStock    bool       `json:"is_low_stock"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ProductListResponse is the response body for a product list
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}

// LowStockItem is a low-stock product with restock guidance for the dashboard
type LowStockItem struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category,omitempty"`
	StockQuantity    int     `json:"stock_quantity"`
	ReorderLevel     int     `json:"reorder_level"`
	Level            string  `json:"level"`
	StockProgress    float64 `json:"stock_progress"`
	SuggestedReorder int     `json:"suggested_reorder"`
}

// LowStockResponse is the response body for the low-stock listing
type LowStockResponse struct {
	Items []LowStockItem `json:"items"`
	Total int            `json:"total"`
}

// ToProductResponse converts a domain product to its response form
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Barcode:       p.Barcode,
		Category:      p.Category,
		Unit:          p.Unit,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		PricePerKg:    p.PricePerKg,
		IsWeightBased: p.IsWeightBased,
		StockQuantity: p.StockQuantity,
		ReorderLevel:  p.ReorderLevel,
		IsLowStock:    p.IsLowStock(),
		ExpiryDate:    p.ExpiryDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductListResponse converts domain products to a list response
func ToProductListResponse(products []*product.Product, total, page, size int) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}
}

// ToLowStockItem converts a domain product to a low-stock entry. Products at
// or below 40% of their reorder level are flagged critical, the rest warning.
func ToLowStockItem(p *product.Product) LowStockItem {
	level := "warning"
	if float64(p.StockQuantity) <= float64(p.ReorderLevel)*0.4 {
		level = "critical"
	}

	progress := 0.0
	if p.ReorderLevel > 0 {
		progress = float64(p.StockQuantity) / float64(p.ReorderLevel) * 100
		if progress > 100 {
			progress = 100
		}
	}

	return LowStockItem{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		StockQuantity:    p.StockQuantity,
		ReorderLevel:     p.ReorderLevel,
		Level:            level,
		StockProgress:    progress,
		SuggestedReorder: p.ReorderLevel * 2,
	}
}

// ToLowStockResponse converts domain products to the low-stock listing
func ToLowStockResponse(products []*product.Product) LowStockResponse {
	items := make([]LowStockItem, 0, len(products))
	for _, p := range products {
		items = append(items, ToLowStockItem(p))
	}
	return LowStockResponse{Items: items, Total: len(items)}
}
