package dto

import (
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
	"github.com/kiranakonnect/kirana-konnect/internal/service"
)

// CustomerRequest is the request body for creating a customer
type CustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address"`
	Email      string `json:"email"`
	IDDocument string `json:"id_document"`
}

// CustomerResponse is the response body for a customer
type CustomerResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Email      string    `json:"email"`
	IDDocument string    `json:"id_document"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomerListResponse is the response body for a customer list
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
}

// BalanceResponse is the response body for a customer's outstanding balance
type BalanceResponse struct {
	CustomerID int64   `json:"customer_id"`
	Balance    float64 `json:"balance"`
}

// LedgerResponse is the response body for a customer's full ledger
type LedgerResponse struct {
	Customer           CustomerResponse  `json:"customer"`
	OutstandingBalance float64           `json:"outstanding_balance"`
	Bills              []BillResponse    `json:"bills"`
	Payments           []PaymentResponse `json:"payments"`
}

// ToCustomerResponse converts a domain customer to its response form
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		Email:      c.Email,
		IDDocument: c.IDDocument,
		CreatedAt:  c.CreatedAt,
	}
}

// ToCustomerListResponse converts domain customers to a list response
func ToCustomerListResponse(customers []*customer.Customer, total, page, size int) CustomerListResponse {
	items := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, ToCustomerResponse(c))
	}
	return CustomerListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}
}

// ToLedgerResponse converts a service ledger to its response form
func ToLedgerResponse(l *service.Ledger) LedgerResponse {
	bills := make([]BillResponse, 0, len(l.Bills))
	for _, b := range l.Bills {
		bills = append(bills, ToBillResponse(b))
	}
	payments := make([]PaymentResponse, 0, len(l.Payments))
	for _, p := range l.Payments {
		payments = append(payments, ToPaymentResponse(p))
	}
	return LedgerResponse{
		Customer:           ToCustomerResponse(l.Customer),
		OutstandingBalance: l.OutstandingBalance,
		Bills:              bills,
		Payments:           payments,
	}
}
