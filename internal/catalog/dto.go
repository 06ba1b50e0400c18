package catalog

import (
	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
)

// ProductRequest is the payload for creating a product.
type ProductRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Description   string  `json:"description" validate:"required,min=10,max=500"`
	Price         float64 `json:"price" validate:"required,gt=0,lte=100"`
	Category      string  `json:"category" validate:"required"`
	IsAvailable   *bool   `json:"is_available"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
}

// Model maps the request onto a product record. The category string is
// validated separately via enums.ParseProductCategory.
func (r ProductRequest) Model(category enums.ProductCategory) models.Product {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return models.Product{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Category:      category,
		IsAvailable:   available,
		StockQuantity: r.StockQuantity,
	}
}

// Fields maps the request onto a wholesale catalog-management update.
func (r ProductRequest) Fields(category enums.ProductCategory) UpdateFields {
	m := r.Model(category)
	return UpdateFields{
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		IsAvailable: m.IsAvailable,
	}
}
