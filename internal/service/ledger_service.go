package service

import (
	"context"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// LedgerService computes per-customer credit ledgers. The outstanding balance
// is derived on every call from the current bill and payment rows, never
// cached, so it cannot drift from the store.
type LedgerService struct {
	customers customer.Repository
	billing   billing.Repository
	logger    logger.Logger
}

// Ledger is a customer's full credit history
type Ledger struct {
	Customer           *customer.Customer `json:"customer"`
	OutstandingBalance float64            `json:"outstanding_balance"`
	Bills              []*billing.Bill    `json:"bills"`
	Payments           []*billing.Payment `json:"payments"`
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(customers customer.Repository, bills billing.Repository, log logger.Logger) *LedgerService {
	return &LedgerService{
		customers: customers,
		billing:   bills,
		logger:    log,
	}
}

// OutstandingBalance returns what the customer currently owes: the sum of
// total_amount over their non-paid bills minus the sum of their payments.
// Positive means the customer owes the shop; an overpaying customer yields a
// negative value, which is preserved rather than clamped.
func (s *LedgerService) OutstandingBalance(ctx context.Context, customerID int64) (float64, error) {
	exists, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, customer.ErrNotFound
	}

	unpaid, err := s.billing.SumUnpaidTotals(ctx, customerID)
	if err != nil {
		return 0, err
	}

	paid, err := s.billing.SumPayments(ctx, customerID)
	if err != nil {
		return 0, err
	}

	return unpaid - paid, nil
}

// Ledger returns the customer's identity, derived balance, and their bills
// and payments newest first (bills carry their nested items)
func (s *LedgerService) Ledger(ctx context.Context, customerID int64) (*Ledger, error) {
	c, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	balance, err := s.OutstandingBalance(ctx, customerID)
	if err != nil {
		return nil, err
	}

	bills, err := s.billing.BillsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	payments, err := s.billing.PaymentsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &Ledger{
		Customer:           c,
		OutstandingBalance: balance,
		Bills:              bills,
		Payments:           payments,
	}, nil
}
