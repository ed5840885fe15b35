package dto

import (
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	"github.com/kiranakonnect/kirana-konnect/internal/service"
)

// BillItemRequest is one requested line item on a bill
type BillItemRequest struct {
	ItemName   string  `json:"item_name" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Weight     float64 `json:"weight"`
	PricePerKg float64 `json:"price_per_kg"`
}

// BillRequest is the request body for creating a bill
type BillRequest struct {
	CustomerID       *int64            `json:"customer_id"`
	CustomerName     string            `json:"customer_name"`
	Subtotal         float64           `json:"subtotal"`
	TaxAmount        float64           `json:"tax_amount"`
	DiscountAmount   float64           `json:"discount_amount"`
	TotalAmount      float64           `json:"total_amount"`
	PaymentMode      string            `json:"payment_mode" binding:"required"`
	PaymentReference string            `json:"payment_reference"`
	Items            []BillItemRequest `json:"items" binding:"required,min=1"`
}

// ToCreateBillInput converts the request to the service input. createdBy is
// the staff name resolved from the request identity, if any.
func (r BillRequest) ToCreateBillInput(createdBy string) service.CreateBillInput {
	items := make([]service.BillItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.BillItemInput{
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
			Weight:     it.Weight,
			PricePerKg: it.PricePerKg,
		})
	}
	return service.CreateBillInput{
		CustomerID:       r.CustomerID,
		CustomerName:     r.CustomerName,
		Subtotal:         r.Subtotal,
		TaxAmount:        r.TaxAmount,
		DiscountAmount:   r.DiscountAmount,
		TotalAmount:      r.TotalAmount,
		PaymentMode:      billing.PaymentMode(r.PaymentMode),
		PaymentReference: r.PaymentReference,
		CreatedBy:        createdBy,
		Items:            items,
	}
}

// BillItemResponse is the response body for a bill line item
type BillItemResponse struct {
	ID         int64   `json:"id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Weight     float64 `json:"weight,omitempty"`
	PricePerKg float64 `json:"price_per_kg,omitempty"`
}

// BillResponse is the response body for a bill
type BillResponse struct {
	ID               int64              `json:"id"`
	BillNumber       string             `json:"bill_number"`
	CustomerID       *int64             `json:"customer_id,omitempty"`
	CustomerName     string             `json:"customer_name,omitempty"`
	Subtotal         float64            `json:"subtotal"`
	TaxAmount        float64            `json:"tax_amount"`
	DiscountAmount   float64            `json:"discount_amount"`
	TotalAmount      float64            `json:"total_amount"`
	PaymentMode      string             `json:"payment_mode"`
	PaymentStatus    string             `json:"payment_status"`
	PaymentReference string             `json:"payment_reference,omitempty"`
	CreatedBy        string             `json:"created_by,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	Items            []BillItemResponse `json:"items"`
}

// ToBillResponse converts a domain bill to its response form
func ToBillResponse(b *billing.Bill) BillResponse {
	items := make([]BillItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BillItemResponse{
			ID:         it.ID,
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
			Weight:     it.Weight,
			PricePerKg: it.PricePerKg,
		})
	}
	return BillResponse{
		ID:               b.ID,
		BillNumber:       b.BillNumber,
		CustomerID:       b.CustomerID,
		CustomerName:     b.CustomerName,
		Subtotal:         b.Subtotal,
		TaxAmount:        b.TaxAmount,
		DiscountAmount:   b.DiscountAmount,
		TotalAmount:      b.TotalAmount,
		PaymentMode:      string(b.PaymentMode),
		PaymentStatus:    string(b.PaymentStatus),
		PaymentReference: b.PaymentReference,
		CreatedBy:        b.CreatedBy,
		CreatedAt:        b.CreatedAt,
		Items:            items,
	}
}
