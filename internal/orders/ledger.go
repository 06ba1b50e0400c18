package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
)

// ListFilter narrows the order listing.
type ListFilter struct {
	Status   *enums.OrderStatus
	ClientID *uuid.UUID
}

// Ledger is the append-only in-memory order store. Records keep their
// insertion order; analytics relies on that scan order for tie-breaking.
// Status transitions are the only mutation after append.
type Ledger struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*models.Order
	seq  []*models.Order
}

// NewLedger builds an empty order ledger.
func NewLedger() *Ledger {
	return &Ledger{byID: make(map[uuid.UUID]*models.Order)}
}

// Append assigns identity, timestamps and the pending status, then commits
// the order to the ledger.
func (l *Ledger) Append(ctx context.Context, order models.Order) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	now := time.Now().UTC()
	order.ID = uuid.New()
	order.Status = enums.OrderStatusPending
	order.CreatedAt = now
	order.UpdatedAt = now

	l.mu.Lock()
	defer l.mu.Unlock()
	record := cloneOrder(order)
	l.byID[record.ID] = record
	l.seq = append(l.seq, record)

	out := cloneOrder(*record)
	return out, nil
}

// Get returns a copy of the order or a typed not-found error.
func (l *Ledger) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	record, ok := l.byID[id]
	if !ok {
		return nil, orderNotFound(id)
	}
	return cloneOrder(*record), nil
}

// List returns orders in ledger scan order, optionally filtered.
func (l *Ledger) List(ctx context.Context, filter ListFilter) ([]models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Order, 0, len(l.seq))
	for _, record := range l.seq {
		if filter.Status != nil && record.Status != *filter.Status {
			continue
		}
		if filter.ClientID != nil && record.ClientID != *filter.ClientID {
			continue
		}
		out = append(out, *cloneOrder(*record))
	}
	return out, nil
}

// Snapshot returns a consistent copy of the full ledger in scan order.
func (l *Ledger) Snapshot(ctx context.Context) []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Order, 0, len(l.seq))
	for _, record := range l.seq {
		out = append(out, *cloneOrder(*record))
	}
	return out
}

// TransitionStatus applies one step of the order state machine.
func (l *Ledger) TransitionStatus(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*models.Order, error) {
	if !target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]any{"status": target})
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	record, ok := l.byID[id]
	if !ok {
		return nil, orderNotFound(id)
	}
	if !record.Status.CanTransitionTo(target) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order status transition not allowed").
			WithDetails(map[string]any{
				"order_id": id,
				"from":     record.Status,
				"to":       target,
			})
	}
	record.Status = target
	record.UpdatedAt = time.Now().UTC()

	return cloneOrder(*record), nil
}

func cloneOrder(order models.Order) *models.Order {
	out := order
	out.Items = append([]models.OrderItem(nil), order.Items...)
	if order.Notes != nil {
		notes := *order.Notes
		out.Notes = &notes
	}
	return &out
}

func orderNotFound(id uuid.UUID) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "order not found").
		WithDetails(map[string]any{"order_id": id})
}
