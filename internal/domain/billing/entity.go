package billing

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidPaymentMode  = errors.New("invalid payment mode")
	ErrInvalidTotal        = errors.New("total amount must be zero or positive")
	ErrInconsistentTotal   = errors.New("total amount does not match subtotal plus tax minus discount")
	ErrNoItems             = errors.New("a bill requires at least one line item")
	ErrInvalidItemQuantity = errors.New("item quantity must be positive")
	ErrInvalidItemPrice    = errors.New("item unit price cannot be negative")
	ErrNoCustomer          = errors.New("a credit sale requires a customer")
	ErrInvalidAmount       = errors.New("payment amount must be positive")
	ErrBillNotFound        = errors.New("bill not found")
)

// PaymentMode is how a bill is settled at the counter
type PaymentMode string

const (
	ModeCash   PaymentMode = "cash"
	ModeOnline PaymentMode = "online"
	ModeSplit  PaymentMode = "split"
	ModeCredit PaymentMode = "credit"
)

// Valid reports whether the mode is one of the accepted billing modes
func (m PaymentMode) Valid() bool {
	switch m {
	case ModeCash, ModeOnline, ModeSplit, ModeCredit:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a bill
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPending PaymentStatus = "pending"
	StatusPartial PaymentStatus = "partial"
)

// StatusForMode derives the settlement state at creation time: a credit sale
// starts pending, everything else is paid on the spot.
func StatusForMode(mode PaymentMode) PaymentStatus {
	if mode == ModeCredit {
		return StatusPending
	}
	return StatusPaid
}

// PaymentMethod is how a standalone payment was received
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodOnline PaymentMethod = "online"
	MethodUPI    PaymentMethod = "upi"
	MethodCard   PaymentMethod = "card"
)

// Valid reports whether the method is one of the accepted payment methods
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodOnline, MethodUPI, MethodCard:
		return true
	}
	return false
}

// Bill is a sale record. CustomerID is nil for anonymous cash sales, in which
// case CustomerName carries a free-text name. Deleting a bill cascades to its
// items; items have no life of their own.
type Bill struct {
	ID               int64         `json:"id"`
	BillNumber       string        `json:"bill_number"`
	CustomerID       *int64        `json:"customer_id,omitempty"`
	CustomerName     string        `json:"customer_name,omitempty"`
	Subtotal         float64       `json:"subtotal"`
	TaxAmount        float64       `json:"tax_amount"`
	DiscountAmount   float64       `json:"discount_amount"`
	TotalAmount      float64       `json:"total_amount"`
	PaymentMode      PaymentMode   `json:"payment_mode"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaymentReference string        `json:"payment_reference,omitempty"`
	CreatedBy        string        `json:"created_by,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	Items            []BillItem    `json:"items"`
}

// BillItem is one line of a bill. Weight and PricePerKg are only set for
// weight-sold goods.
type BillItem struct {
	ID         int64   `json:"id"`
	BillID     int64   `json:"bill_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Weight     float64 `json:"weight,omitempty"`
	PricePerKg float64 `json:"price_per_kg,omitempty"`
}

// Payment is money received from a customer. BillID is set when the payment
// settles a specific bill and nil for a general credit reduction.
type Payment struct {
	ID         int64         `json:"id"`
	CustomerID int64         `json:"customer_id"`
	BillID     *int64        `json:"bill_id,omitempty"`
	Amount     float64       `json:"amount"`
	Mode       PaymentMethod `json:"mode"`
	Reference  string        `json:"reference,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// totalTolerance absorbs float rounding when checking monetary consistency
const totalTolerance = 0.01

// Validate checks the bill's monetary fields and items before persistence
func (b *Bill) Validate() error {
	if !b.PaymentMode.Valid() {
		return ErrInvalidPaymentMode
	}
	// A credit sale's pending total is only recoverable through a customer's
	// ledger, so it cannot be anonymous.
	if b.PaymentMode == ModeCredit && b.CustomerID == nil {
		return ErrNoCustomer
	}
	if b.TotalAmount < 0 || b.Subtotal < 0 || b.TaxAmount < 0 || b.DiscountAmount < 0 {
		return ErrInvalidTotal
	}
	if math.Abs(b.TotalAmount-(b.Subtotal+b.TaxAmount-b.DiscountAmount)) > totalTolerance {
		return ErrInconsistentTotal
	}
	if len(b.Items) == 0 {
		return ErrNoItems
	}
	for _, it := range b.Items {
		if it.Quantity <= 0 {
			return ErrInvalidItemQuantity
		}
		if it.UnitPrice < 0 {
			return ErrInvalidItemPrice
		}
	}
	return nil
}

// NewPayment creates a standalone payment for a customer
func NewPayment(customerID int64, amount float64, mode PaymentMethod, reference, notes string) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !mode.Valid() {
		return nil, ErrInvalidPaymentMode
	}

	return &Payment{
		CustomerID: customerID,
		Amount:     amount,
		Mode:       mode,
		Reference:  reference,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}, nil
}
