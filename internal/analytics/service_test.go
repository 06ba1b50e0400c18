package analytics

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
)

type stubOrders struct {
	orders []models.Order
}

func (s *stubOrders) Snapshot(ctx context.Context) []models.Order {
	return s.orders
}

type stubClients struct {
	count int
}

func (s *stubClients) Count(ctx context.Context) int {
	return s.count
}

func order(createdAt time.Time, total float64, items ...models.OrderItem) models.Order {
	return models.Order{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		Items:       items,
		TotalAmount: total,
		Status:      enums.OrderStatusPending,
		CreatedAt:   createdAt,
	}
}

func item(name string, qty int) models.OrderItem {
	return models.OrderItem{ProductID: uuid.New(), ProductName: name, Quantity: qty}
}

func newTestService(t *testing.T, orders *stubOrders, clients *stubClients, now time.Time) *service {
	t.Helper()
	svc, err := NewService(orders, clients)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	impl := svc.(*service)
	impl.now = func() time.Time { return now }
	return impl
}

func TestSummarizeEmptyLedger(t *testing.T) {
	svc := newTestService(t, &stubOrders{}, &stubClients{count: 3}, time.Now())

	summary, err := svc.Summarize(context.Background(), enums.AnalyticsPeriodWeek)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if summary.TotalOrders != 0 {
		t.Fatalf("expected 0 orders but got %d", summary.TotalOrders)
	}
	if summary.TotalRevenue != 0 {
		t.Fatalf("expected 0 revenue but got %v", summary.TotalRevenue)
	}
	if summary.AverageOrderValue != 0 {
		t.Fatalf("expected 0 average but got %v", summary.AverageOrderValue)
	}
	if len(summary.TopProducts) != 0 {
		t.Fatalf("expected no top products but got %v", summary.TopProducts)
	}
	if summary.ClientCount != 3 {
		t.Fatalf("expected client count 3 but got %d", summary.ClientCount)
	}
}

func TestSummarizeFiltersByPeriod(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	orders := &stubOrders{orders: []models.Order{
		order(now.Add(-2*time.Hour), 10.00, item("Espresso", 2)),
		order(now.AddDate(0, 0, -3), 20.00, item("Croissant", 1)),
		order(now.AddDate(0, 0, -30), 40.00, item("Earl Grey", 5)),
	}}
	svc := newTestService(t, orders, &stubClients{count: 1}, now)

	summary, err := svc.Summarize(context.Background(), enums.AnalyticsPeriodWeek)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if summary.TotalOrders != 2 {
		t.Fatalf("expected 2 orders in the week but got %d", summary.TotalOrders)
	}
	if summary.TotalRevenue != 30.00 {
		t.Fatalf("expected revenue 30.00 but got %v", summary.TotalRevenue)
	}
	if summary.AverageOrderValue != 15.00 {
		t.Fatalf("expected average 15.00 but got %v", summary.AverageOrderValue)
	}
}

func TestSummarizeRanksTopProducts(t *testing.T) {
	now := time.Now().UTC()
	orders := &stubOrders{orders: []models.Order{
		order(now, 1, item("Espresso", 3), item("Croissant", 5)),
		order(now, 1, item("Espresso", 4)),
		order(now, 1, item("Earl Grey", 7), item("Cappuccino", 1)),
		order(now, 1, item("Latte", 2), item("Muffin", 1), item("Tea", 1)),
	}}
	svc := newTestService(t, orders, &stubClients{}, now)

	summary, err := svc.Summarize(context.Background(), enums.AnalyticsPeriodToday)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if len(summary.TopProducts) != 5 {
		t.Fatalf("expected the ranking capped at 5 but got %d", len(summary.TopProducts))
	}
	if summary.TopProducts[0].Name != "Espresso" || summary.TopProducts[0].QuantitySold != 7 {
		t.Fatalf("unexpected leader %v", summary.TopProducts[0])
	}
	if summary.TopProducts[1].Name != "Earl Grey" {
		t.Fatalf("expected Earl Grey second but got %v", summary.TopProducts[1])
	}
}

func TestSummarizeBreaksTiesByFirstSeen(t *testing.T) {
	now := time.Now().UTC()
	orders := &stubOrders{orders: []models.Order{
		order(now, 1, item("Croissant", 2)),
		order(now, 1, item("Espresso", 2)),
	}}
	svc := newTestService(t, orders, &stubClients{}, now)

	summary, err := svc.Summarize(context.Background(), enums.AnalyticsPeriodToday)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if summary.TopProducts[0].Name != "Croissant" {
		t.Fatalf("expected first-seen product to win the tie, got %v", summary.TopProducts)
	}
}

func TestSummarizeRejectsUnknownPeriod(t *testing.T) {
	svc := newTestService(t, &stubOrders{}, &stubClients{}, time.Now())

	if _, err := svc.Summarize(context.Background(), enums.AnalyticsPeriod("quarter")); err == nil {
		t.Fatalf("expected unknown period to fail")
	}
}

func TestSummarizeIsRepeatable(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	ledger := &stubOrders{orders: []models.Order{
		order(now.Add(-time.Hour), 12.50, item("Espresso", 3), item("Croissant", 1)),
		order(now.Add(-2*time.Hour), 7.60, item("Cappuccino", 2)),
	}}
	svc := newTestService(t, ledger, &stubClients{count: 2}, now)

	first, err := svc.Summarize(context.Background(), enums.AnalyticsPeriodToday)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	second, err := svc.Summarize(context.Background(), enums.AnalyticsPeriodToday)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recomputation diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
