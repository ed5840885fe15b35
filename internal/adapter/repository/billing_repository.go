package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	"github.com/kiranakonnect/kirana-konnect/internal/infrastructure/database"
)

// BillingRepository implements billing.Repository over PostgreSQL
type BillingRepository struct {
	db *pgxpool.Pool
}

// NewBillingRepository creates a new BillingRepository
func NewBillingRepository(db *pgxpool.Pool) billing.Repository {
	return &BillingRepository{db: db}
}

const billColumns = `id, bill_number, customer_id, COALESCE(customer_name, ''), subtotal, tax_amount,
	discount_amount, total_amount, payment_mode, payment_status, COALESCE(payment_reference, ''),
	COALESCE(created_by, ''), created_at`

// CreateBill persists the bill, its items and the optional settlement payment
// in a single transaction. Either everything lands or nothing does.
func (r *BillingRepository) CreateBill(ctx context.Context, b *billing.Bill, pay *billing.Payment) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO bills (bill_number, customer_id, customer_name, subtotal, tax_amount,
				discount_amount, total_amount, payment_mode, payment_status, payment_reference,
				created_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			 RETURNING id`,
			b.BillNumber, b.CustomerID, b.CustomerName, b.Subtotal, b.TaxAmount,
			b.DiscountAmount, b.TotalAmount, b.PaymentMode, b.PaymentStatus, b.PaymentReference,
			b.CreatedBy, b.CreatedAt,
		).Scan(&b.ID)
		if err != nil {
			return fmt.Errorf("failed to insert bill: %w", err)
		}

		for i := range b.Items {
			item := &b.Items[i]
			item.BillID = b.ID
			err := tx.QueryRow(ctx,
				`INSERT INTO bill_items (bill_id, item_name, quantity, unit_price, total_price, weight, price_per_kg)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)
				 RETURNING id`,
				item.BillID, item.ItemName, item.Quantity, item.UnitPrice, item.TotalPrice,
				item.Weight, item.PricePerKg,
			).Scan(&item.ID)
			if err != nil {
				return fmt.Errorf("failed to insert bill item: %w", err)
			}
		}

		if pay != nil {
			pay.BillID = &b.ID
			err := tx.QueryRow(ctx,
				`INSERT INTO payments (customer_id, bill_id, amount, mode, reference, notes, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)
				 RETURNING id`,
				pay.CustomerID, pay.BillID, pay.Amount, pay.Mode, pay.Reference, pay.Notes, pay.CreatedAt,
			).Scan(&pay.ID)
			if err != nil {
				return fmt.Errorf("failed to insert bill payment: %w", err)
			}
		}
		return nil
	})
}

// BillByNumber implements billing.Repository.BillByNumber
func (r *BillingRepository) BillByNumber(ctx context.Context, billNumber string) (*billing.Bill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+billColumns+` FROM bills WHERE bill_number = $1`, billNumber)

	b, err := scanBill(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// BillNumberExists implements billing.Repository.BillNumberExists
func (r *BillingRepository) BillNumberExists(ctx context.Context, billNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bills WHERE bill_number = $1)`, billNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bill number: %w", err)
	}
	return exists, nil
}

// BillsByCustomer implements billing.Repository.BillsByCustomer
func (r *BillingRepository) BillsByCustomer(ctx context.Context, customerID int64) ([]*billing.Bill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+billColumns+` FROM bills
		 WHERE customer_id = $1 ORDER BY created_at DESC, id DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer bills: %w", err)
	}
	defer rows.Close()

	bills, err := scanBills(rows)
	if err != nil {
		return nil, err
	}
	for _, b := range bills {
		if err := r.loadItems(ctx, b); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

// PaidBillsBetween implements billing.Repository.PaidBillsBetween
func (r *BillingRepository) PaidBillsBetween(ctx context.Context, from, to time.Time) ([]*billing.Bill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+billColumns+` FROM bills
		 WHERE payment_status = 'paid' AND created_at >= $1 AND created_at < $2
		 ORDER BY created_at DESC, id DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list paid bills: %w", err)
	}
	defer rows.Close()

	bills, err := scanBills(rows)
	if err != nil {
		return nil, err
	}
	for _, b := range bills {
		if err := r.loadItems(ctx, b); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

// SumUnpaidTotals implements billing.Repository.SumUnpaidTotals
func (r *BillingRepository) SumUnpaidTotals(ctx context.Context, customerID int64) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM bills
		 WHERE customer_id = $1 AND payment_status <> 'paid'`, customerID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum unpaid bills: %w", err)
	}
	return total, nil
}

// SumBillTotals implements billing.Repository.SumBillTotals
func (r *BillingRepository) SumBillTotals(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM bills`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum bill totals: %w", err)
	}
	return total, nil
}

// CreatePayment implements billing.Repository.CreatePayment
func (r *BillingRepository) CreatePayment(ctx context.Context, p *billing.Payment) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO payments (customer_id, bill_id, amount, mode, reference, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		p.CustomerID, p.BillID, p.Amount, p.Mode, p.Reference, p.Notes, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// PaymentsByCustomer implements billing.Repository.PaymentsByCustomer
func (r *BillingRepository) PaymentsByCustomer(ctx context.Context, customerID int64) ([]*billing.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_id, bill_id, amount, mode, COALESCE(reference, ''), COALESCE(notes, ''), created_at
		 FROM payments WHERE customer_id = $1 ORDER BY created_at DESC, id DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer payments: %w", err)
	}
	defer rows.Close()

	var payments []*billing.Payment
	for rows.Next() {
		p := &billing.Payment{}
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.BillID, &p.Amount, &p.Mode, &p.Reference, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// SumPayments implements billing.Repository.SumPayments
func (r *BillingRepository) SumPayments(ctx context.Context, customerID int64) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE customer_id = $1`, customerID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}

func (r *BillingRepository) loadItems(ctx context.Context, b *billing.Bill) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, bill_id, item_name, quantity, unit_price, total_price, weight, price_per_kg
		 FROM bill_items WHERE bill_id = $1 ORDER BY id`, b.ID)
	if err != nil {
		return fmt.Errorf("failed to list bill items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item billing.BillItem
		if err := rows.Scan(&item.ID, &item.BillID, &item.ItemName, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice, &item.Weight, &item.PricePerKg); err != nil {
			return fmt.Errorf("failed to scan bill item: %w", err)
		}
		b.Items = append(b.Items, item)
	}
	return rows.Err()
}

func scanBill(row pgx.Row) (*billing.Bill, error) {
	b := &billing.Bill{}
	err := row.Scan(&b.ID, &b.BillNumber, &b.CustomerID, &b.CustomerName, &b.Subtotal, &b.TaxAmount,
		&b.DiscountAmount, &b.TotalAmount, &b.PaymentMode, &b.PaymentStatus, &b.PaymentReference,
		&b.CreatedBy, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, billing.ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to scan bill: %w", err)
	}
	return b, nil
}

func scanBills(rows pgx.Rows) ([]*billing.Bill, error) {
	var bills []*billing.Bill
	for rows.Next() {
		b := &billing.Bill{}
		if err := rows.Scan(&b.ID, &b.BillNumber, &b.CustomerID, &b.CustomerName, &b.Subtotal, &b.TaxAmount,
			&b.DiscountAmount, &b.TotalAmount, &b.PaymentMode, &b.PaymentStatus, &b.PaymentReference,
			&b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}
