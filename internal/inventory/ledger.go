package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/buyyourkawa/kawa-backend/internal/catalog"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
)

// Reservation ties the atomic decrement of a product's stock to one order line.
type Reservation struct {
	ProductID uuid.UUID
	Quantity  int
}

// StockCommitter is the catalog surface the ledger commits against.
type StockCommitter interface {
	ReserveAll(ctx context.Context, requests []catalog.StockRequest) error
	ReleaseAll(ctx context.Context, requests []catalog.StockRequest) error
}

// Ledger provides the all-or-nothing multi-product stock commitment used by
// order fulfillment. Atomicity lives in the catalog's critical section; the
// ledger validates the request shape before entering it.
type Ledger struct {
	catalog StockCommitter
}

// NewLedger builds an inventory ledger over the provided catalog.
func NewLedger(committer StockCommitter) (*Ledger, error) {
	if committer == nil {
		return nil, fmt.Errorf("stock committer required")
	}
	return &Ledger{catalog: committer}, nil
}

// ReserveAll commits stock for every reservation or none of them. Duplicate
// product lines accumulate before the availability check so a request cannot
// sneak past it in parts.
func (l *Ledger) ReserveAll(ctx context.Context, reservations []Reservation) error {
	requests, err := toRequests(reservations)
	if err != nil {
		return err
	}
	return l.catalog.ReserveAll(ctx, requests)
}

// ReleaseAll returns committed stock, used when a pending order is cancelled.
func (l *Ledger) ReleaseAll(ctx context.Context, reservations []Reservation) error {
	requests, err := toRequests(reservations)
	if err != nil {
		return err
	}
	return l.catalog.ReleaseAll(ctx, requests)
}

func toRequests(reservations []Reservation) ([]catalog.StockRequest, error) {
	if len(reservations) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reservation list is empty")
	}
	requests := make([]catalog.StockRequest, 0, len(reservations))
	for _, res := range reservations {
		if res.ProductID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "reservation product id required")
		}
		if res.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "reservation quantity must be positive").
				WithDetails(map[string]any{"product_id": res.ProductID})
		}
		requests = append(requests, catalog.StockRequest{
			ProductID: res.ProductID,
			Quantity:  res.Quantity,
		})
	}
	return requests, nil
}
