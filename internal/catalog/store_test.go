package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
)

func seedProduct(t *testing.T, store *Store, name string, stock int) *models.Product {
	t.Helper()
	product, err := store.Create(context.Background(), models.Product{
		Name:          name,
		Description:   "a rather long product description",
		Price:         2.50,
		Category:      enums.ProductCategoryCoffee,
		IsAvailable:   true,
		StockQuantity: stock,
	})
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func TestReserveAllDecrementsEveryLine(t *testing.T) {
	store := NewStore()
	espresso := seedProduct(t, store, "Espresso", 10)
	croissant := seedProduct(t, store, "Croissant", 5)

	err := store.ReserveAll(context.Background(), []StockRequest{
		{ProductID: espresso.ID, Quantity: 3},
		{ProductID: croissant.ID, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("expected reservation to succeed: %v", err)
	}

	got, _ := store.Get(context.Background(), espresso.ID)
	if got.StockQuantity != 7 {
		t.Fatalf("expected espresso stock 7 but got %d", got.StockQuantity)
	}
	got, _ = store.Get(context.Background(), croissant.ID)
	if got.StockQuantity != 3 {
		t.Fatalf("expected croissant stock 3 but got %d", got.StockQuantity)
	}
}

func TestReserveAllLeavesStockUntouchedOnShortage(t *testing.T) {
	store := NewStore()
	espresso := seedProduct(t, store, "Espresso", 10)
	croissant := seedProduct(t, store, "Croissant", 1)

	err := store.ReserveAll(context.Background(), []StockRequest{
		{ProductID: espresso.ID, Quantity: 3},
		{ProductID: croissant.ID, Quantity: 2},
	})
	if err == nil {
		t.Fatalf("expected reservation to fail")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInsufficientStock {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}

	got, _ := store.Get(context.Background(), espresso.ID)
	if got.StockQuantity != 10 {
		t.Fatalf("espresso stock was touched: %d", got.StockQuantity)
	}
	got, _ = store.Get(context.Background(), croissant.ID)
	if got.StockQuantity != 1 {
		t.Fatalf("croissant stock was touched: %d", got.StockQuantity)
	}
}

func TestReserveAllAggregatesDuplicateLines(t *testing.T) {
	store := NewStore()
	espresso := seedProduct(t, store, "Espresso", 5)

	err := store.ReserveAll(context.Background(), []StockRequest{
		{ProductID: espresso.ID, Quantity: 3},
		{ProductID: espresso.ID, Quantity: 3},
	})
	if err == nil {
		t.Fatalf("expected aggregated demand of 6 to fail against stock 5")
	}

	got, _ := store.Get(context.Background(), espresso.ID)
	if got.StockQuantity != 5 {
		t.Fatalf("stock was touched: %d", got.StockQuantity)
	}
}

func TestReserveAllUnknownProduct(t *testing.T) {
	store := NewStore()
	err := store.ReserveAll(context.Background(), []StockRequest{
		{ProductID: uuid.New(), Quantity: 1},
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestReleaseAllRestoresStock(t *testing.T) {
	store := NewStore()
	espresso := seedProduct(t, store, "Espresso", 10)

	requests := []StockRequest{{ProductID: espresso.ID, Quantity: 4}}
	if err := store.ReserveAll(context.Background(), requests); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if err := store.ReleaseAll(context.Background(), requests); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	got, _ := store.Get(context.Background(), espresso.ID)
	if got.StockQuantity != 10 {
		t.Fatalf("expected stock restored to 10 but got %d", got.StockQuantity)
	}
}

func TestConcurrentReservationsNeverOversell(t *testing.T) {
	store := NewStore()
	espresso := seedProduct(t, store, "Espresso", 1)

	const attempts = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.ReserveAll(context.Background(), []StockRequest{
				{ProductID: espresso.ID, Quantity: 1},
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly 1 successful reservation but got %d", successes)
	}
	got, _ := store.Get(context.Background(), espresso.ID)
	if got.StockQuantity != 0 {
		t.Fatalf("expected stock 0 but got %d", got.StockQuantity)
	}
}

func TestListAvailableOnlyHidesOutOfStock(t *testing.T) {
	store := NewStore()
	seedProduct(t, store, "Espresso", 10)
	seedProduct(t, store, "Croissant", 0)

	all, err := store.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products but got %d", len(all))
	}

	available, err := store.List(context.Background(), ListFilter{AvailableOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(available) != 1 || available[0].Name != "Espresso" {
		t.Fatalf("unexpected available listing %v", available)
	}
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	store := NewStore()
	espresso := seedProduct(t, store, "Espresso", 2)

	if _, err := store.AdjustStock(context.Background(), espresso.ID, -3); err == nil {
		t.Fatalf("expected adjustment below zero to fail")
	}
	got, _ := store.Get(context.Background(), espresso.ID)
	if got.StockQuantity != 2 {
		t.Fatalf("stock was touched: %d", got.StockQuantity)
	}
}

func TestUpdatePreservesStock(t *testing.T) {
	store := NewStore()
	espresso := seedProduct(t, store, "Espresso", 10)

	updated, err := store.Update(context.Background(), espresso.ID, UpdateFields{
		Name:        "Double Espresso",
		Description: "two shots",
		Price:       3.456,
		Category:    enums.ProductCategoryCoffee,
		IsAvailable: false,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Double Espresso" || updated.IsAvailable {
		t.Fatalf("fields were not applied: %+v", updated)
	}
	if updated.Price != 3.46 {
		t.Fatalf("expected rounded price 3.46 but got %v", updated.Price)
	}
	if updated.StockQuantity != 10 {
		t.Fatalf("stock must survive an update but got %d", updated.StockQuantity)
	}
}

func TestUpdateUnknownProduct(t *testing.T) {
	store := NewStore()

	_, err := store.Update(context.Background(), uuid.New(), UpdateFields{
		Name:     "Ghost",
		Price:    1.00,
		Category: enums.ProductCategoryCoffee,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found but got %v", err)
	}
}
