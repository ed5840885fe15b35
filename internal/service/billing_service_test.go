package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
)

func newBillingFixture() (*memStore, *BillingService) {
	s := newMemStore()
	return s, NewBillingService(&memCustomers{s}, &memBilling{s}, "KK", testLogger())
}

func validBillInput(customerID *int64, mode billing.PaymentMode) CreateBillInput {
	return CreateBillInput{
		CustomerID:  customerID,
		Subtotal:    500,
		TotalAmount: 500,
		PaymentMode: mode,
		Items: []BillItemInput{
			{ItemName: "Aashirvaad Atta", Quantity: 2, UnitPrice: 250, TotalPrice: 500},
		},
	}
}

func TestCreateBillCreditIsPendingWithoutPayment(t *testing.T) {
	s, svc := newBillingFixture()
	c := seedCustomer(t, s, "Rajesh Kumar")

	bill, err := svc.CreateBill(context.Background(), validBillInput(&c.ID, billing.ModeCredit))
	require.NoError(t, err)

	assert.Equal(t, billing.StatusPending, bill.PaymentStatus)
	assert.NotEmpty(t, bill.BillNumber)
	assert.Empty(t, s.payments)
}

func TestCreateBillCashWithCustomerCreatesPayment(t *testing.T) {
	s, svc := newBillingFixture()
	c := seedCustomer(t, s, "Priya Sharma")

	bill, err := svc.CreateBill(context.Background(), validBillInput(&c.ID, billing.ModeCash))
	require.NoError(t, err)

	assert.Equal(t, billing.StatusPaid, bill.PaymentStatus)
	require.Len(t, s.payments, 1)
	pay := s.payments[0]
	assert.Equal(t, bill.TotalAmount, pay.Amount)
	assert.Equal(t, c.ID, pay.CustomerID)
	require.NotNil(t, pay.BillID)
	assert.Equal(t, bill.ID, *pay.BillID)
}

func TestCreateBillAnonymousCashHasNoPayment(t *testing.T) {
	s, svc := newBillingFixture()

	in := validBillInput(nil, billing.ModeCash)
	in.CustomerName = "Walk-in"

	bill, err := svc.CreateBill(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, billing.StatusPaid, bill.PaymentStatus)
	assert.Empty(t, s.payments)
}

func TestCreateBillValidation(t *testing.T) {
	_, svc := newBillingFixture()
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*CreateBillInput)
		wantErr error
	}{
		{"missing payment mode", func(in *CreateBillInput) { in.PaymentMode = "" }, billing.ErrInvalidPaymentMode},
		{"unknown payment mode", func(in *CreateBillInput) { in.PaymentMode = "cheque" }, billing.ErrInvalidPaymentMode},
		{"negative total", func(in *CreateBillInput) { in.TotalAmount = -1 }, billing.ErrInvalidTotal},
		{"inconsistent total", func(in *CreateBillInput) { in.TotalAmount = 400 }, billing.ErrInconsistentTotal},
		{"no items", func(in *CreateBillInput) { in.Items = nil }, billing.ErrNoItems},
		{"zero quantity", func(in *CreateBillInput) { in.Items[0].Quantity = 0 }, billing.ErrInvalidItemQuantity},
		{"negative unit price", func(in *CreateBillInput) { in.Items[0].UnitPrice = -5 }, billing.ErrInvalidItemPrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validBillInput(nil, billing.ModeCash)
			tc.mutate(&in)
			_, err := svc.CreateBill(ctx, in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateBillTaxAndDiscountConsistency(t *testing.T) {
	_, svc := newBillingFixture()

	in := validBillInput(nil, billing.ModeCash)
	in.TaxAmount = 25
	in.DiscountAmount = 50
	in.TotalAmount = 475

	bill, err := svc.CreateBill(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 475.0, bill.TotalAmount)
}

func TestCreateBillFullyDiscountedZeroTotal(t *testing.T) {
	s, svc := newBillingFixture()

	in := validBillInput(nil, billing.ModeCash)
	in.DiscountAmount = 500
	in.TotalAmount = 0

	bill, err := svc.CreateBill(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 0.0, bill.TotalAmount)
	assert.Equal(t, billing.StatusPaid, bill.PaymentStatus)
	require.Len(t, s.bills, 1)
}

func TestCreateBillCreditWithoutCustomerRejected(t *testing.T) {
	s, svc := newBillingFixture()

	in := validBillInput(nil, billing.ModeCredit)
	in.CustomerName = "Walk-in"

	_, err := svc.CreateBill(context.Background(), in)
	assert.ErrorIs(t, err, billing.ErrNoCustomer)
	assert.Empty(t, s.bills)
}

func TestCreateBillUnknownCustomer(t *testing.T) {
	_, svc := newBillingFixture()

	id := int64(404)
	_, err := svc.CreateBill(context.Background(), validBillInput(&id, billing.ModeCash))
	assert.ErrorIs(t, err, customer.ErrNotFound)
}

func TestCreateBillStorageFailureLeavesNothing(t *testing.T) {
	s, svc := newBillingFixture()
	c := seedCustomer(t, s, "Rajesh Kumar")
	s.failCreateBill = true

	_, err := svc.CreateBill(context.Background(), validBillInput(&c.ID, billing.ModeCash))
	require.Error(t, err)

	assert.Empty(t, s.bills)
	assert.Empty(t, s.payments)
}

func TestCreateBillRetriesOnNumberCollision(t *testing.T) {
	s, svc := newBillingFixture()

	suffixes := []string{"0001", "0001", "0002"}
	svc.suffix = func() string {
		next := suffixes[0]
		suffixes = suffixes[1:]
		return next
	}

	first, err := svc.CreateBill(context.Background(), validBillInput(nil, billing.ModeCash))
	require.NoError(t, err)

	second, err := svc.CreateBill(context.Background(), validBillInput(nil, billing.ModeCash))
	require.NoError(t, err)

	assert.NotEqual(t, first.BillNumber, second.BillNumber)
	assert.Len(t, s.bills, 2)
}

func TestCreateBillNumberExhaustion(t *testing.T) {
	_, svc := newBillingFixture()
	svc.suffix = func() string { return "0001" }

	_, err := svc.CreateBill(context.Background(), validBillInput(nil, billing.ModeCash))
	require.NoError(t, err)

	_, err = svc.CreateBill(context.Background(), validBillInput(nil, billing.ModeCash))
	assert.ErrorIs(t, err, ErrBillNumberExhausted)
}

func TestGetBill(t *testing.T) {
	_, svc := newBillingFixture()

	created, err := svc.CreateBill(context.Background(), validBillInput(nil, billing.ModeCash))
	require.NoError(t, err)

	found, err := svc.GetBill(context.Background(), created.BillNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Aashirvaad Atta", found.Items[0].ItemName)

	_, err = svc.GetBill(context.Background(), "KK20260000")
	assert.ErrorIs(t, err, billing.ErrBillNotFound)
}

func TestRecordPayment(t *testing.T) {
	s, svc := newBillingFixture()
	c := seedCustomer(t, s, "Priya Sharma")

	pay, err := svc.RecordPayment(context.Background(), c.ID, 250, billing.MethodUPI, "UPI-12345", "partial settlement")
	require.NoError(t, err)
	assert.NotZero(t, pay.ID)
	assert.Nil(t, pay.BillID)
	assert.Equal(t, 250.0, pay.Amount)
}

func TestRecordPaymentValidation(t *testing.T) {
	s, svc := newBillingFixture()
	c := seedCustomer(t, s, "Priya Sharma")
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, c.ID, 0, billing.MethodCash, "", "")
	assert.ErrorIs(t, err, billing.ErrInvalidAmount)

	_, err = svc.RecordPayment(ctx, c.ID, -10, billing.MethodCash, "", "")
	assert.ErrorIs(t, err, billing.ErrInvalidAmount)

	_, err = svc.RecordPayment(ctx, c.ID, 100, "cheque", "", "")
	assert.ErrorIs(t, err, billing.ErrInvalidPaymentMode)

	_, err = svc.RecordPayment(ctx, 404, 100, billing.MethodCash, "", "")
	assert.ErrorIs(t, err, customer.ErrNotFound)
}

func TestCashSaleShowsOnLedger(t *testing.T) {
	s, svc := newBillingFixture()
	c := seedCustomer(t, s, "Rajesh Kumar")
	ledger := NewLedgerService(&memCustomers{s}, &memBilling{s}, testLogger())

	_, err := svc.CreateBill(context.Background(), validBillInput(&c.ID, billing.ModeCash))
	require.NoError(t, err)

	l, err := ledger.Ledger(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, l.Payments, 1)
	assert.Equal(t, 500.0, l.Payments[0].Amount)
	assert.Equal(t, 0.0, l.OutstandingBalance)
}

func TestGeneratedBillNumberShape(t *testing.T) {
	_, svc := newBillingFixture()

	bill, err := svc.CreateBill(context.Background(), validBillInput(nil, billing.ModeOnline))
	require.NoError(t, err)
	assert.Regexp(t, fmt.Sprintf(`^KK\d{4}\d{4}$`), bill.BillNumber)
}
