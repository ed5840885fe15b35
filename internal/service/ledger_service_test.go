package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
)

func newLedgerFixture() (*memStore, *LedgerService) {
	s := newMemStore()
	return s, NewLedgerService(&memCustomers{s}, &memBilling{s}, testLogger())
}

func seedCustomer(t *testing.T, s *memStore, name string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name, "+91 9876543210", "", "", "")
	require.NoError(t, err)
	require.NoError(t, (&memCustomers{s}).Create(context.Background(), c))
	return c
}

func seedBill(s *memStore, customerID *int64, total float64, status billing.PaymentStatus, createdAt time.Time) *billing.Bill {
	b := &billing.Bill{
		BillNumber:    "KK2026" + createdAt.Format("040506"),
		CustomerID:    customerID,
		Subtotal:      total,
		TotalAmount:   total,
		PaymentMode:   billing.ModeCash,
		PaymentStatus: status,
		CreatedAt:     createdAt,
		Items: []billing.BillItem{
			{ItemName: "Tata Salt", Quantity: 1, UnitPrice: total, TotalPrice: total},
		},
	}
	_ = (&memBilling{s}).CreateBill(context.Background(), b, nil)
	return b
}

func TestOutstandingBalanceNoActivity(t *testing.T) {
	s, svc := newLedgerFixture()
	c := seedCustomer(t, s, "Rajesh Kumar")

	balance, err := svc.OutstandingBalance(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance)
}

func TestOutstandingBalanceUnknownCustomer(t *testing.T) {
	_, svc := newLedgerFixture()

	_, err := svc.OutstandingBalance(context.Background(), 999)
	assert.ErrorIs(t, err, customer.ErrNotFound)
}

func TestOutstandingBalancePendingMinusPayments(t *testing.T) {
	s, svc := newLedgerFixture()
	c := seedCustomer(t, s, "Priya Sharma")

	seedBill(s, &c.ID, 1000, billing.StatusPending, time.Now())
	_ = (&memBilling{s}).CreatePayment(context.Background(), &billing.Payment{
		CustomerID: c.ID, Amount: 400, Mode: billing.MethodCash, CreatedAt: time.Now(),
	})

	balance, err := svc.OutstandingBalance(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 600.0, balance)
}

func TestOutstandingBalanceIgnoresPaidBills(t *testing.T) {
	s, svc := newLedgerFixture()
	c := seedCustomer(t, s, "Amit Verma")

	seedBill(s, &c.ID, 500, billing.StatusPaid, time.Now())
	seedBill(s, &c.ID, 300, billing.StatusPending, time.Now())

	balance, err := svc.OutstandingBalance(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, balance)
}

func TestOutstandingBalanceOverpaymentPreserved(t *testing.T) {
	s, svc := newLedgerFixture()
	c := seedCustomer(t, s, "Sunita Devi")

	seedBill(s, &c.ID, 200, billing.StatusPending, time.Now())
	_ = (&memBilling{s}).CreatePayment(context.Background(), &billing.Payment{
		CustomerID: c.ID, Amount: 350, Mode: billing.MethodUPI, CreatedAt: time.Now(),
	})

	balance, err := svc.OutstandingBalance(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, -150.0, balance)
}

func TestLedgerOrdersNewestFirst(t *testing.T) {
	s, svc := newLedgerFixture()
	c := seedCustomer(t, s, "Rajesh Kumar")

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	older := seedBill(s, &c.ID, 100, billing.StatusPending, base)
	newer := seedBill(s, &c.ID, 200, billing.StatusPending, base.Add(time.Hour))

	_ = (&memBilling{s}).CreatePayment(context.Background(), &billing.Payment{
		CustomerID: c.ID, Amount: 50, Mode: billing.MethodCash, CreatedAt: base,
	})
	_ = (&memBilling{s}).CreatePayment(context.Background(), &billing.Payment{
		CustomerID: c.ID, Amount: 75, Mode: billing.MethodCash, CreatedAt: base.Add(2 * time.Hour),
	})

	ledger, err := svc.Ledger(context.Background(), c.ID)
	require.NoError(t, err)

	require.Len(t, ledger.Bills, 2)
	assert.Equal(t, newer.ID, ledger.Bills[0].ID)
	assert.Equal(t, older.ID, ledger.Bills[1].ID)
	assert.NotEmpty(t, ledger.Bills[0].Items)

	require.Len(t, ledger.Payments, 2)
	assert.Equal(t, 75.0, ledger.Payments[0].Amount)

	assert.Equal(t, 175.0, ledger.OutstandingBalance)
	assert.Equal(t, c.ID, ledger.Customer.ID)
}

func TestLedgerTieBrokenByInsertionOrder(t *testing.T) {
	s, svc := newLedgerFixture()
	c := seedCustomer(t, s, "Rajesh Kumar")

	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	first := seedBill(s, &c.ID, 100, billing.StatusPending, at)
	second := seedBill(s, &c.ID, 200, billing.StatusPending, at)

	ledger, err := svc.Ledger(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, ledger.Bills, 2)
	assert.Equal(t, second.ID, ledger.Bills[0].ID)
	assert.Equal(t, first.ID, ledger.Bills[1].ID)
}
