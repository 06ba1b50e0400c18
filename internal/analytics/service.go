package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
	"github.com/buyyourkawa/kawa-backend/pkg/money"
)

const topProductLimit = 5

// OrderSource yields a consistent snapshot of the order ledger in scan order.
type OrderSource interface {
	Snapshot(ctx context.Context) []models.Order
}

// ClientCounter reports the number of registered clients.
type ClientCounter interface {
	Count(ctx context.Context) int
}

// Service recomputes sales figures from the order ledger on every request.
// There is no cached state to drift out of sync with the ledger.
type Service interface {
	Summarize(ctx context.Context, period enums.AnalyticsPeriod) (*models.SalesSummary, error)
}

type service struct {
	orders  OrderSource
	clients ClientCounter
	now     func() time.Time
}

// NewService wires the analytics reader.
func NewService(orders OrderSource, clients ClientCounter) (Service, error) {
	if orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "analytics: order source is required")
	}
	if clients == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "analytics: client counter is required")
	}
	return &service{orders: orders, clients: clients, now: time.Now}, nil
}

// Summarize aggregates every order created at or after the period start.
// Cancelled orders count like any other; the summary reflects demand, not
// delivery.
func (s *service) Summarize(ctx context.Context, period enums.AnalyticsPeriod) (*models.SalesSummary, error) {
	if !period.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid analytics period").
			WithDetails(map[string]any{"period": period})
	}

	now := s.now().UTC()
	start := period.Start(now)

	type productTally struct {
		name  string
		qty   int
		first int
	}

	var (
		totalOrders int
		totals      []float64
		tallies     = make(map[string]*productTally)
		seen        int
	)
	for _, order := range s.orders.Snapshot(ctx) {
		if order.CreatedAt.Before(start) {
			continue
		}
		totalOrders++
		totals = append(totals, order.TotalAmount)
		for _, item := range order.Items {
			tally, ok := tallies[item.ProductName]
			if !ok {
				tally = &productTally{name: item.ProductName, first: seen}
				tallies[item.ProductName] = tally
				seen++
			}
			tally.qty += item.Quantity
		}
	}

	ranked := make([]*productTally, 0, len(tallies))
	for _, tally := range tallies {
		ranked = append(ranked, tally)
	}
	// Ties keep ledger encounter order so the ranking is deterministic.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].qty != ranked[j].qty {
			return ranked[i].qty > ranked[j].qty
		}
		return ranked[i].first < ranked[j].first
	})
	if len(ranked) > topProductLimit {
		ranked = ranked[:topProductLimit]
	}

	top := make([]models.TopProduct, 0, len(ranked))
	for _, tally := range ranked {
		top = append(top, models.TopProduct{Name: tally.name, QuantitySold: tally.qty})
	}

	revenue := money.Sum(totals)
	average := money.Average(revenue, totalOrders)

	return &models.SalesSummary{
		Period:            period,
		TotalOrders:       totalOrders,
		TotalRevenue:      revenue,
		AverageOrderValue: average,
		TopProducts:       top,
		ClientCount:       s.clients.Count(ctx),
		GeneratedAt:       now,
	}, nil
}
