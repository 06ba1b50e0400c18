package models

import (
	"time"

	"github.com/buyyourkawa/kawa-backend/pkg/enums"
)

// TopProduct is one entry of the best-seller ranking.
type TopProduct struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}

// SalesSummary is the analytics payload recomputed from the order ledger.
type SalesSummary struct {
	Period            enums.AnalyticsPeriod `json:"period"`
	TotalOrders       int                   `json:"total_orders"`
	TotalRevenue      float64               `json:"total_revenue"`
	AverageOrderValue float64               `json:"average_order_value"`
	TopProducts       []TopProduct          `json:"top_products"`
	ClientCount       int                   `json:"client_count"`
	GeneratedAt       time.Time             `json:"generated_at"`
}
