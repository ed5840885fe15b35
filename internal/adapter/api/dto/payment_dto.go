package dto

import (
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
)

// PaymentRequest is the request body for recording a standalone payment
type PaymentRequest struct {
	CustomerID int64   `json:"customer_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Mode       string  `json:"mode" binding:"required"`
	Reference  string  `json:"reference"`
	Notes      string  `json:"notes"`
}

// PaymentResponse is the response body for a payment
type PaymentResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	BillID     *int64    `json:"bill_id,omitempty"`
	Amount     float64   `json:"amount"`
	Mode       string    `json:"mode"`
	Reference  string    `json:"reference,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToPaymentResponse converts a domain payment to its response form
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		BillID:     p.BillID,
		Amount:     p.Amount,
		Mode:       string(p.Mode),
		Reference:  p.Reference,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
	}
}
