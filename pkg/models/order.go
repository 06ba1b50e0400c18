package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
)

// OrderItem is a line of an order. UnitPrice and TotalPrice are snapshots
// taken when the order was placed; they never track later price changes.
type OrderItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
}

// Order is a committed ledger record. Only the status (and UpdatedAt) may
// change after creation.
type Order struct {
	ID          uuid.UUID         `json:"id"`
	ClientID    uuid.UUID         `json:"client_id"`
	ClientName  string            `json:"client_name"`
	Items       []OrderItem       `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	Status      enums.OrderStatus `json:"status"`
	Notes       *string           `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
