package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
)

// Product represents a menu item with its live stock level. StockQuantity is
// the only field order fulfillment mutates; everything else belongs to
// catalog management.
type Product struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Price         float64               `json:"price"`
	Category      enums.ProductCategory `json:"category"`
	IsAvailable   bool                  `json:"is_available"`
	StockQuantity int                   `json:"stock_quantity"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
