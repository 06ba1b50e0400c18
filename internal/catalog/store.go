package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
	"github.com/buyyourkawa/kawa-backend/pkg/money"
)

// StockRequest names a product and the quantity to commit or return.
type StockRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

// ListFilter narrows the product listing.
type ListFilter struct {
	Category      *enums.ProductCategory
	AvailableOnly bool
}

// Store is the in-memory product catalog. mu is the single critical section
// guarding stock: every multi-product commitment happens under one exclusive
// acquisition so no reader can observe a half-applied reservation.
type Store struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*models.Product
	order []uuid.UUID
}

// NewStore builds an empty catalog.
func NewStore() *Store {
	return &Store{byID: make(map[uuid.UUID]*models.Product)}
}

// Create assigns identity and timestamps and persists the product.
func (s *Store) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	if !product.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product category").
			WithDetails(map[string]any{"category": product.Category})
	}
	now := time.Now().UTC()
	product.ID = uuid.New()
	product.Price = money.Round2(product.Price)
	product.CreatedAt = now
	product.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	record := product
	s.byID[record.ID] = &record
	s.order = append(s.order, record.ID)

	out := record
	return &out, nil
}

// Get returns a copy of the product or a typed not-found error.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.byID[id]
	if !ok {
		return nil, notFound(id)
	}
	out := *record
	return &out, nil
}

// List returns products in insertion order, optionally filtered by category
// and availability. AvailableOnly also hides products with zero stock.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		record := s.byID[id]
		if filter.Category != nil && record.Category != *filter.Category {
			continue
		}
		if filter.AvailableOnly && (!record.IsAvailable || record.StockQuantity <= 0) {
			continue
		}
		out = append(out, *record)
	}
	return out, nil
}

// UpdateFields carries a wholesale product update. Stock is managed through
// AdjustStock and the reservation path, not here.
type UpdateFields struct {
	Name        string
	Description string
	Price       float64
	Category    enums.ProductCategory
	IsAvailable bool
}

// Update overwrites the catalog-management fields of an existing product.
func (s *Store) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*models.Product, error) {
	if !fields.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product category").
			WithDetails(map[string]any{"category": fields.Category})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[id]
	if !ok {
		return nil, notFound(id)
	}

	record.Name = fields.Name
	record.Description = fields.Description
	record.Price = money.Round2(fields.Price)
	record.Category = fields.Category
	record.IsAvailable = fields.IsAvailable
	record.UpdatedAt = time.Now().UTC()

	out := *record
	return &out, nil
}

// AdjustStock applies a stock delta to a single product. A negative delta
// that would push the quantity below zero fails with no mutation.
func (s *Store) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[id]
	if !ok {
		return nil, notFound(id)
	}
	next := record.StockQuantity + delta
	if next < 0 {
		return nil, insufficientStock(record, -delta)
	}
	record.StockQuantity = next
	record.UpdatedAt = time.Now().UTC()

	out := *record
	return &out, nil
}

// ReserveAll atomically decrements stock for every request, or none of them.
// Phase one validates the whole list under the exclusive lock; phase two
// applies the decrements. There is no rollback path because nothing is
// written until every line has passed.
func (s *Store) ReserveAll(ctx context.Context, requests []StockRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	needed := make(map[uuid.UUID]int, len(requests))
	for _, req := range requests {
		needed[req.ProductID] += req.Quantity
	}

	for _, req := range requests {
		record, ok := s.byID[req.ProductID]
		if !ok {
			return notFound(req.ProductID)
		}
		if record.StockQuantity < needed[req.ProductID] {
			return insufficientStock(record, needed[req.ProductID])
		}
	}

	now := time.Now().UTC()
	for id, qty := range needed {
		record := s.byID[id]
		record.StockQuantity -= qty
		record.UpdatedAt = now
	}
	return nil
}

// ReleaseAll returns previously reserved stock, e.g. when an order is
// cancelled. Products are never deleted, so every id is expected to resolve.
func (s *Store) ReleaseAll(ctx context.Context, requests []StockRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for _, req := range requests {
		record, ok := s.byID[req.ProductID]
		if !ok {
			return notFound(req.ProductID)
		}
		record.StockQuantity += req.Quantity
		record.UpdatedAt = now
	}
	return nil
}

func notFound(id uuid.UUID) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
		WithDetails(map[string]any{"product_id": id})
}

func insufficientStock(record *models.Product, requested int) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeInsufficientStock, "insufficient stock for "+record.Name).
		WithDetails(map[string]any{
			"product_id": record.ID,
			"available":  record.StockQuantity,
			"requested":  requested,
		})
}
