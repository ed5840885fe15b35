package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/product"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// estimatedCostFactor is the assumed cost share of the selling price when a
// product's purchase cost is unknown (a 35% margin heuristic)
const estimatedCostFactor = 0.65

// DashboardService computes derived daily statistics for the dashboard
type DashboardService struct {
	billing  billing.Repository
	products product.Repository
	logger   logger.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(bills billing.Repository, products product.Repository, log logger.Logger) *DashboardService {
	return &DashboardService{
		billing:  bills,
		products: products,
		logger:   log,
	}
}

// DailyProfitStats is the profit breakdown for one day
type DailyProfitStats struct {
	Date          string  `json:"date"`
	TotalRevenue  float64 `json:"total_revenue"`
	ActualCost    float64 `json:"actual_cost"`
	Profit        float64 `json:"profit"`
	PriorProfit   float64 `json:"prior_profit"`
	GrowthPercent float64 `json:"growth_percent"`
	BillCount     int     `json:"bill_count"`
}

// DailyProfit computes revenue, cost and profit over the paid bills of the
// given day, plus growth against the prior day. Item costs come from the
// product catalog matched by item name (best effort); unknown costs fall back
// to an estimate from the selling price.
func (s *DashboardService) DailyProfit(ctx context.Context, date time.Time) (*DailyProfitStats, error) {
	revenue, cost, count, err := s.dayTotals(ctx, date)
	if err != nil {
		return nil, err
	}
	profit := revenue - cost

	priorRevenue, priorCost, _, err := s.dayTotals(ctx, date.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	priorProfit := priorRevenue - priorCost

	return &DailyProfitStats{
		Date:          date.Format("2006-01-02"),
		TotalRevenue:  revenue,
		ActualCost:    cost,
		Profit:        profit,
		PriorProfit:   priorProfit,
		GrowthPercent: growthPercent(profit, priorProfit),
		BillCount:     count,
	}, nil
}

func (s *DashboardService) dayTotals(ctx context.Context, date time.Time) (revenue, cost float64, count int, err error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	bills, err := s.billing.PaidBillsBetween(ctx, start, end)
	if err != nil {
		return 0, 0, 0, err
	}

	for _, b := range bills {
		for _, it := range b.Items {
			revenue += it.TotalPrice
			cost += s.itemCost(ctx, it)
		}
	}
	return revenue, cost, len(bills), nil
}

// itemCost resolves the purchase cost of one sold item. Product names are not
// guaranteed unique; the first catalog match wins.
func (s *DashboardService) itemCost(ctx context.Context, it billing.BillItem) float64 {
	p, err := s.products.FindByName(ctx, it.ItemName)
	if err != nil {
		if !errors.Is(err, product.ErrNotFound) {
			s.logger.Warn("product lookup failed during profit computation", "item", it.ItemName, "error", err)
		}
		return estimatedCost(it)
	}
	if p.CostPrice <= 0 {
		return estimatedCost(it)
	}
	if p.IsWeightBased && it.Weight > 0 {
		return p.CostPrice * it.Weight
	}
	return p.CostPrice * float64(it.Quantity)
}

func estimatedCost(it billing.BillItem) float64 {
	return it.UnitPrice * estimatedCostFactor * float64(it.Quantity)
}

// growthPercent is the day-over-day change. Two flat days are 0%; profit out
// of nowhere is 100%.
func growthPercent(current, prior float64) float64 {
	if prior == 0 {
		switch {
		case current > 0:
			return 100
		case current < 0:
			return -100
		default:
			return 0
		}
	}
	return (current - prior) / math.Abs(prior) * 100
}
