package orders

import "github.com/google/uuid"

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderRequest is the inbound payload for order placement. Per-line
// quantity caps are enforced by the service so the limit stays configurable.
type PlaceOrderRequest struct {
	ClientID uuid.UUID          `json:"client_id" validate:"required"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes    *string            `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// StatusUpdateRequest carries the target status for an order transition.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}
