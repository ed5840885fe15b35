package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// ErrBillNumberExhausted is returned when no unique bill number could be
// generated within the bounded number of attempts.
var ErrBillNumberExhausted = errors.New("could not generate a unique bill number")

// billNumberAttempts bounds the generate-and-check loop
const billNumberAttempts = 5

// BillingService handles the transactional bill write path and standalone
// payments
type BillingService struct {
	customers customer.Repository
	billing   billing.Repository
	logger    logger.Logger

	shopPrefix string
	suffix     func() string
}

// NewBillingService creates a new BillingService. shopPrefix is the short
// code prepended to generated bill numbers.
func NewBillingService(customers customer.Repository, bills billing.Repository, shopPrefix string, log logger.Logger) *BillingService {
	if shopPrefix == "" {
		shopPrefix = "KK"
	}

	return &BillingService{
		customers:  customers,
		billing:    bills,
		logger:     log,
		shopPrefix: shopPrefix,
		suffix: func() string {
			return fmt.Sprintf("%04d", rand.Intn(10000))
		},
	}
}

// BillItemInput is one requested line item
type BillItemInput struct {
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Weight     float64 `json:"weight"`
	PricePerKg float64 `json:"price_per_kg"`
}

// CreateBillInput is the payload for CreateBill. Either CustomerID or a
// free-text CustomerName identifies the buyer; both absent means an
// anonymous cash sale.
type CreateBillInput struct {
	CustomerID       *int64              `json:"customer_id"`
	CustomerName     string              `json:"customer_name"`
	Subtotal         float64             `json:"subtotal"`
	TaxAmount        float64             `json:"tax_amount"`
	DiscountAmount   float64             `json:"discount_amount"`
	TotalAmount      float64             `json:"total_amount"`
	PaymentMode      billing.PaymentMode `json:"payment_mode"`
	PaymentReference string              `json:"payment_reference"`
	CreatedBy        string              `json:"created_by"`
	Items            []BillItemInput     `json:"items"`
}

// CreateBill validates the request and persists the bill, its line items and
// (for settled sales with a known customer) a payment record as one atomic
// unit. On any failure nothing from the attempt survives.
func (s *BillingService) CreateBill(ctx context.Context, in CreateBillInput) (*billing.Bill, error) {
	bill := &billing.Bill{
		CustomerID:       in.CustomerID,
		CustomerName:     in.CustomerName,
		Subtotal:         in.Subtotal,
		TaxAmount:        in.TaxAmount,
		DiscountAmount:   in.DiscountAmount,
		TotalAmount:      in.TotalAmount,
		PaymentMode:      in.PaymentMode,
		PaymentStatus:    billing.StatusForMode(in.PaymentMode),
		PaymentReference: in.PaymentReference,
		CreatedBy:        in.CreatedBy,
		CreatedAt:        time.Now(),
	}
	for _, it := range in.Items {
		bill.Items = append(bill.Items, billing.BillItem{
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
			Weight:     it.Weight,
			PricePerKg: it.PricePerKg,
		})
	}

	if err := bill.Validate(); err != nil {
		return nil, err
	}

	if in.CustomerID != nil {
		exists, err := s.customers.Exists(ctx, *in.CustomerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, customer.ErrNotFound
		}
	}

	number, err := s.generateBillNumber(ctx)
	if err != nil {
		return nil, err
	}
	bill.BillNumber = number

	var pay *billing.Payment
	if in.PaymentMode != billing.ModeCredit && in.CustomerID != nil {
		pay = &billing.Payment{
			CustomerID: *in.CustomerID,
			Amount:     in.TotalAmount,
			Mode:       paymentMethodForMode(in.PaymentMode),
			Reference:  in.PaymentReference,
			CreatedAt:  bill.CreatedAt,
		}
	}

	if err := s.billing.CreateBill(ctx, bill, pay); err != nil {
		s.logger.Error("failed to persist bill", "bill_number", bill.BillNumber, "error", err)
		return nil, err
	}

	s.logger.Info("bill created", "bill_number", bill.BillNumber, "total", bill.TotalAmount, "mode", bill.PaymentMode)
	return bill, nil
}

// GetBill returns the full bill detail for a bill number, items in insertion
// order
func (s *BillingService) GetBill(ctx context.Context, billNumber string) (*billing.Bill, error) {
	return s.billing.BillByNumber(ctx, billNumber)
}

// RecordPayment persists a standalone payment against a customer, reducing
// their outstanding balance on the next ledger read
func (s *BillingService) RecordPayment(ctx context.Context, customerID int64, amount float64, mode billing.PaymentMethod, reference, notes string) (*billing.Payment, error) {
	exists, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, customer.ErrNotFound
	}

	pay, err := billing.NewPayment(customerID, amount, mode, reference, notes)
	if err != nil {
		return nil, err
	}

	if err := s.billing.CreatePayment(ctx, pay); err != nil {
		s.logger.Error("failed to persist payment", "customer_id", customerID, "error", err)
		return nil, err
	}

	return pay, nil
}

// generateBillNumber produces shop-prefix + year + a 4-digit suffix and
// retries on collision with a bounded number of attempts
func (s *BillingService) generateBillNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	for i := 0; i < billNumberAttempts; i++ {
		number := fmt.Sprintf("%s%d%s", s.shopPrefix, year, s.suffix())
		exists, err := s.billing.BillNumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", ErrBillNumberExhausted
}

// paymentMethodForMode maps a bill settlement mode to the payment method
// recorded on the customer's ledger. Split settlements are recorded as cash.
func paymentMethodForMode(mode billing.PaymentMode) billing.PaymentMethod {
	switch mode {
	case billing.ModeOnline:
		return billing.MethodOnline
	default:
		return billing.MethodCash
	}
}
