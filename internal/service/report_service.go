package service

import (
	"context"
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/product"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
	"github.com/kiranakonnect/kirana-konnect/pkg/report"
)

// ReportService aggregates business-wide totals for the summary endpoint and
// the PDF export. It never mutates state.
type ReportService struct {
	customers customer.Repository
	products  product.Repository
	billing   billing.Repository
	ledger    *LedgerService
	logger    logger.Logger

	shopName string
}

// NewReportService creates a new ReportService
func NewReportService(customers customer.Repository, products product.Repository, bills billing.Repository, ledger *LedgerService, shopName string, log logger.Logger) *ReportService {
	if shopName == "" {
		shopName = "Kirana Konnect"
	}
	return &ReportService{
		customers: customers,
		products:  products,
		billing:   bills,
		ledger:    ledger,
		logger:    log,
		shopName:  shopName,
	}
}

// SummarizeBusiness reduces the full product, bill, customer and payment
// collections into five numbers. An empty store yields all zeros.
func (s *ReportService) SummarizeBusiness(ctx context.Context) (*report.Summary, error) {
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var totalInvestment float64
	for _, p := range products {
		if p.Price > 0 {
			totalInvestment += p.Price * float64(p.StockQuantity)
		}
	}

	totalSales, err := s.billing.SumBillTotals(ctx)
	if err != nil {
		return nil, err
	}

	totalCustomers, err := s.customers.Count(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := s.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var totalOutstanding float64
	for _, c := range customers {
		balance, err := s.ledger.OutstandingBalance(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		totalOutstanding += balance
	}

	return &report.Summary{
		TotalProducts:    totalProducts,
		TotalInvestment:  totalInvestment,
		TotalSales:       totalSales,
		TotalCustomers:   totalCustomers,
		TotalOutstanding: totalOutstanding,
	}, nil
}

// BusinessReportData assembles everything the PDF renderer needs
func (s *ReportService) BusinessReportData(ctx context.Context) (*report.Data, error) {
	summary, err := s.SummarizeBusiness(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	productRows := make([]report.ProductRow, 0, len(products))
	for _, p := range products {
		productRows = append(productRows, report.ProductRow{
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.StockQuantity,
			LowStock: p.IsLowStock(),
		})
	}

	customers, err := s.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	customerRows := make([]report.CustomerRow, 0, len(customers))
	for _, c := range customers {
		balance, err := s.ledger.OutstandingBalance(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		paid, err := s.billing.SumPayments(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		customerRows = append(customerRows, report.CustomerRow{
			Name:        c.Name,
			Phone:       c.Phone,
			Outstanding: balance,
			TotalPaid:   paid,
		})
	}

	return &report.Data{
		ShopName:    s.shopName,
		GeneratedAt: time.Now(),
		Summary:     *summary,
		Products:    productRows,
		Customers:   customerRows,
	}, nil
}
