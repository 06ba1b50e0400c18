package clients

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
	"github.com/buyyourkawa/kawa-backend/pkg/pagination"
)

// Store is the in-memory client registry. Records are indexed by id and kept
// in insertion order so list pagination is stable.
type Store struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*models.Client
	order []uuid.UUID
}

// NewStore builds an empty client store.
func NewStore() *Store {
	return &Store{byID: make(map[uuid.UUID]*models.Client)}
}

// Create assigns identity and timestamps and persists the record.
func (s *Store) Create(ctx context.Context, client models.Client) (*models.Client, error) {
	now := time.Now().UTC()
	client.ID = uuid.New()
	client.CreatedAt = now
	client.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	record := client
	s.byID[record.ID] = &record
	s.order = append(s.order, record.ID)

	out := record
	return &out, nil
}

// Get returns a copy of the client or a typed not-found error.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "client not found").
			WithDetails(map[string]any{"client_id": id})
	}
	out := *record
	return &out, nil
}

// List returns a page of clients in insertion order.
func (s *Store) List(ctx context.Context, params pagination.Params) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lo, hi := params.Window(len(s.order))
	out := make([]models.Client, 0, hi-lo)
	for _, id := range s.order[lo:hi] {
		out = append(out, *s.byID[id])
	}
	return out, nil
}

// Count returns the number of registered clients.
func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// UpdateFields carries a wholesale client update. Semantics are
// last-writer-wins: every field is overwritten, matching the PUT contract.
type UpdateFields struct {
	Name          string
	Email         string
	Phone         string
	Address       models.Address
	LoyaltyPoints int
	IsActive      bool
}

// Update overwrites the mutable fields of an existing client.
func (s *Store) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "client not found").
			WithDetails(map[string]any{"client_id": id})
	}

	record.Name = fields.Name
	record.Email = fields.Email
	record.Phone = fields.Phone
	record.Address = fields.Address
	record.LoyaltyPoints = fields.LoyaltyPoints
	record.IsActive = fields.IsActive
	record.UpdatedAt = time.Now().UTC()

	out := *record
	return &out, nil
}
