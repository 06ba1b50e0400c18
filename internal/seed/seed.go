package seed

import (
	"context"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	"github.com/buyyourkawa/kawa-backend/pkg/logger"
	"github.com/buyyourkawa/kawa-backend/pkg/models"
)

// ProductCreator is the catalog surface the seeder writes through.
type ProductCreator interface {
	Create(ctx context.Context, product models.Product) (*models.Product, error)
}

// sampleProducts is the starter menu loaded into an empty catalog.
var sampleProducts = []models.Product{
	{
		Name:          "Espresso",
		Description:   "Short and intense shot pulled from our house blend",
		Price:         2.50,
		Category:      enums.ProductCategoryCoffee,
		IsAvailable:   true,
		StockQuantity: 100,
	},
	{
		Name:          "Cappuccino",
		Description:   "Espresso topped with steamed milk and a thick foam cap",
		Price:         3.80,
		Category:      enums.ProductCategoryCoffee,
		IsAvailable:   true,
		StockQuantity: 80,
	},
	{
		Name:          "Croissant",
		Description:   "Butter croissant baked fresh on site every morning",
		Price:         1.90,
		Category:      enums.ProductCategoryPastry,
		IsAvailable:   true,
		StockQuantity: 50,
	},
	{
		Name:          "Earl Grey",
		Description:   "Bergamot-scented black tea served loose leaf",
		Price:         2.20,
		Category:      enums.ProductCategoryTea,
		IsAvailable:   true,
		StockQuantity: 60,
	},
	{
		Name:          "Sandwich Jambon",
		Description:   "Baguette sandwich with ham, butter and cornichons",
		Price:         4.50,
		Category:      enums.ProductCategorySandwich,
		IsAvailable:   true,
		StockQuantity: 30,
	},
}

// Products loads the sample menu into the catalog. Seeding is best effort:
// a failed record is logged and the rest still load.
func Products(ctx context.Context, catalog ProductCreator, logg *logger.Logger) int {
	loaded := 0
	for _, product := range sampleProducts {
		if _, err := catalog.Create(ctx, product); err != nil {
			logg.Error(logg.WithField(ctx, "product", product.Name), "seeding sample product", err)
			continue
		}
		loaded++
	}
	return loaded
}
