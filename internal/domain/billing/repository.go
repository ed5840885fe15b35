package billing

import (
	"context"
	"time"
)

// Repository defines the persistence operations for bills and payments.
// CreateBill is the one multi-row write in the system and must be atomic:
// either the bill, all of its items and the optional payment are persisted,
// or none of them are.
type Repository interface {
	// CreateBill persists a bill with its items and, when pay is non-nil, a
	// payment record, as a single transaction. Store-assigned ids are filled
	// in on success.
	CreateBill(ctx context.Context, b *Bill, pay *Payment) error

	// BillByNumber fetches a bill with its items by bill number, returning
	// ErrBillNotFound when absent. Items come back in insertion order.
	BillByNumber(ctx context.Context, number string) (*Bill, error)

	// BillNumberExists reports whether a bill number is already taken
	BillNumberExists(ctx context.Context, number string) (bool, error)

	// BillsByCustomer returns a customer's bills with items, newest first
	BillsByCustomer(ctx context.Context, customerID int64) ([]*Bill, error)

	// PaidBillsBetween returns paid bills created in [from, to) with items
	PaidBillsBetween(ctx context.Context, from, to time.Time) ([]*Bill, error)

	// SumUnpaidTotals sums total_amount over a customer's bills whose status
	// is not paid. No matching rows yields 0.
	SumUnpaidTotals(ctx context.Context, customerID int64) (float64, error)

	// SumBillTotals sums total_amount over every bill regardless of status
	SumBillTotals(ctx context.Context) (float64, error)

	// CreatePayment persists a standalone payment
	CreatePayment(ctx context.Context, p *Payment) error

	// PaymentsByCustomer returns a customer's payments, newest first
	PaymentsByCustomer(ctx context.Context, customerID int64) ([]*Payment, error)

	// SumPayments sums amount over a customer's payments. No rows yields 0.
	SumPayments(ctx context.Context, customerID int64) (float64, error)
}
