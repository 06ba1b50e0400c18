package clients

import "github.com/buyyourkawa/kawa-backend/pkg/models"

// AddressPayload is the address block accepted on create and update.
type AddressPayload struct {
	Street  string `json:"street" validate:"required,min=2,max=100"`
	City    string `json:"city" validate:"required,min=2,max=50"`
	Zip     string `json:"zip" validate:"required,len=5,numeric"`
	Country string `json:"country" validate:"omitempty,min=2,max=50"`
}

// ClientRequest is the payload for creating or replacing a client.
type ClientRequest struct {
	Name          string         `json:"name" validate:"required,min=2,max=100"`
	Email         string         `json:"email" validate:"required,email"`
	Phone         string         `json:"phone" validate:"required,min=10,max=20"`
	Address       AddressPayload `json:"address" validate:"required"`
	LoyaltyPoints int            `json:"loyalty_points" validate:"gte=0"`
	IsActive      *bool          `json:"is_active"`
}

// Model maps the request onto a client record.
func (r ClientRequest) Model() models.Client {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	country := r.Address.Country
	if country == "" {
		country = "France"
	}
	return models.Client{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Address: models.Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			Zip:     r.Address.Zip,
			Country: country,
		},
		LoyaltyPoints: r.LoyaltyPoints,
		IsActive:      active,
	}
}

// Fields maps the request onto a wholesale update.
func (r ClientRequest) Fields() UpdateFields {
	m := r.Model()
	return UpdateFields{
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		LoyaltyPoints: m.LoyaltyPoints,
		IsActive:      m.IsActive,
	}
}
