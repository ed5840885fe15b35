package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/notification"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/product"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

var errForcedStorageFailure = errors.New("forced storage failure")

// memStore is an in-memory stand-in for the record store, shared by the
// repository fakes below. CreateBill is all-or-nothing like the real thing.
type memStore struct {
	customers     []*customer.Customer
	products      []*product.Product
	bills         []*billing.Bill
	payments      []*billing.Payment
	notifications []*notification.Notification

	nextID int64

	failCreateBill bool
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func testLogger() logger.Logger {
	return logger.NewLogger()
}

// --- customer.Repository fake ---

type memCustomers struct{ s *memStore }

func (r *memCustomers) Create(_ context.Context, c *customer.Customer) error {
	c.ID = r.s.id()
	r.s.customers = append(r.s.customers, c)
	return nil
}

func (r *memCustomers) FindByID(_ context.Context, id int64) (*customer.Customer, error) {
	for _, c := range r.s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, customer.ErrNotFound
}

func (r *memCustomers) List(_ context.Context, limit, offset int) ([]*customer.Customer, error) {
	all := r.s.customers
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memCustomers) ListAll(_ context.Context) ([]*customer.Customer, error) {
	return r.s.customers, nil
}

func (r *memCustomers) Search(_ context.Context, query string) ([]*customer.Customer, error) {
	q := strings.ToLower(query)
	var out []*customer.Customer
	for _, c := range r.s.customers {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCustomers) Exists(_ context.Context, id int64) (bool, error) {
	for _, c := range r.s.customers {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCustomers) Count(_ context.Context) (int, error) {
	return len(r.s.customers), nil
}

// --- product.Repository fake ---

type memProducts struct{ s *memStore }

func (r *memProducts) Create(_ context.Context, p *product.Product) error {
	p.ID = r.s.id()
	r.s.products = append(r.s.products, p)
	return nil
}

func (r *memProducts) FindByID(_ context.Context, id int64) (*product.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, product.ErrNotFound
}

func (r *memProducts) FindByName(_ context.Context, name string) (*product.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, product.ErrNotFound
}

func (r *memProducts) List(_ context.Context, limit, offset int) ([]*product.Product, error) {
	all := r.s.products
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memProducts) ListAll(_ context.Context) ([]*product.Product, error) {
	return r.s.products, nil
}

func (r *memProducts) ListLowStock(_ context.Context) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.s.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProducts) ListExpiringBefore(_ context.Context, cutoff time.Time) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.s.products {
		if p.ExpiryDate != nil && !p.ExpiryDate.After(cutoff) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProducts) AddStock(_ context.Context, id int64, quantity int) error {
	for _, p := range r.s.products {
		if p.ID == id {
			p.StockQuantity += quantity
			return nil
		}
	}
	return product.ErrNotFound
}

func (r *memProducts) Count(_ context.Context) (int, error) {
	return len(r.s.products), nil
}

// --- billing.Repository fake ---

type memBilling struct{ s *memStore }

func (r *memBilling) CreateBill(_ context.Context, b *billing.Bill, pay *billing.Payment) error {
	if r.s.failCreateBill {
		return errForcedStorageFailure
	}
	b.ID = r.s.id()
	for i := range b.Items {
		b.Items[i].ID = r.s.id()
		b.Items[i].BillID = b.ID
	}
	r.s.bills = append(r.s.bills, b)
	if pay != nil {
		pay.ID = r.s.id()
		pay.BillID = &b.ID
		r.s.payments = append(r.s.payments, pay)
	}
	return nil
}

func (r *memBilling) BillByNumber(_ context.Context, number string) (*billing.Bill, error) {
	for _, b := range r.s.bills {
		if b.BillNumber == number {
			return b, nil
		}
	}
	return nil, billing.ErrBillNotFound
}

func (r *memBilling) BillNumberExists(_ context.Context, number string) (bool, error) {
	for _, b := range r.s.bills {
		if b.BillNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *memBilling) BillsByCustomer(_ context.Context, customerID int64) ([]*billing.Bill, error) {
	var out []*billing.Bill
	for _, b := range r.s.bills {
		if b.CustomerID != nil && *b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	sortBillsNewestFirst(out)
	return out, nil
}

func (r *memBilling) PaidBillsBetween(_ context.Context, from, to time.Time) ([]*billing.Bill, error) {
	var out []*billing.Bill
	for _, b := range r.s.bills {
		if b.PaymentStatus == billing.StatusPaid && !b.CreatedAt.Before(from) && b.CreatedAt.Before(to) {
			out = append(out, b)
		}
	}
	sortBillsNewestFirst(out)
	return out, nil
}

func (r *memBilling) SumUnpaidTotals(_ context.Context, customerID int64) (float64, error) {
	var sum float64
	for _, b := range r.s.bills {
		if b.CustomerID != nil && *b.CustomerID == customerID && b.PaymentStatus != billing.StatusPaid {
			sum += b.TotalAmount
		}
	}
	return sum, nil
}

func (r *memBilling) SumBillTotals(_ context.Context) (float64, error) {
	var sum float64
	for _, b := range r.s.bills {
		sum += b.TotalAmount
	}
	return sum, nil
}

func (r *memBilling) CreatePayment(_ context.Context, p *billing.Payment) error {
	p.ID = r.s.id()
	r.s.payments = append(r.s.payments, p)
	return nil
}

func (r *memBilling) PaymentsByCustomer(_ context.Context, customerID int64) ([]*billing.Payment, error) {
	var out []*billing.Payment
	for _, p := range r.s.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memBilling) SumPayments(_ context.Context, customerID int64) (float64, error) {
	var sum float64
	for _, p := range r.s.payments {
		if p.CustomerID == customerID {
			sum += p.Amount
		}
	}
	return sum, nil
}

func sortBillsNewestFirst(bills []*billing.Bill) {
	sort.SliceStable(bills, func(i, j int) bool {
		if !bills[i].CreatedAt.Equal(bills[j].CreatedAt) {
			return bills[i].CreatedAt.After(bills[j].CreatedAt)
		}
		return bills[i].ID > bills[j].ID
	})
}

// --- notification.Repository fake ---

type memNotifications struct{ s *memStore }

func (r *memNotifications) Create(_ context.Context, n *notification.Notification) error {
	n.ID = r.s.id()
	r.s.notifications = append(r.s.notifications, n)
	return nil
}

func (r *memNotifications) ListUnread(_ context.Context) ([]*notification.Notification, error) {
	var out []*notification.Notification
	for _, n := range r.s.notifications {
		if !n.IsRead {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memNotifications) MarkRead(_ context.Context, id int64) error {
	for _, n := range r.s.notifications {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return notification.ErrNotFound
}

func (r *memNotifications) HasUnreadForProduct(_ context.Context, typ notification.Type, productID int64) (bool, error) {
	for _, n := range r.s.notifications {
		if !n.IsRead && n.Type == typ && n.ProductID != nil && *n.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memNotifications) HasUnreadOfType(_ context.Context, typ notification.Type) (bool, error) {
	for _, n := range r.s.notifications {
		if !n.IsRead && n.Type == typ {
			return true, nil
		}
	}
	return false, nil
}

func (r *memNotifications) DeleteUnreadOfType(_ context.Context, typ notification.Type) error {
	kept := r.s.notifications[:0]
	for _, n := range r.s.notifications {
		if n.IsRead || n.Type != typ {
			kept = append(kept, n)
		}
	}
	r.s.notifications = kept
	return nil
}
