package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is the postal address embedded in a client record.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Client represents a registered coffee-shop customer.
type Client struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       Address   `json:"address"`
	LoyaltyPoints int       `json:"loyalty_points"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
