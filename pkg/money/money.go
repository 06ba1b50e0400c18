package money

import "github.com/shopspring/decimal"

// Round2 rounds an amount to two decimal places, half away from zero.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// LineTotal computes unit price times quantity, rounded to two decimals.
// The multiplication happens in decimal space so 0.1-style float drift
// cannot leak into a persisted order.
func LineTotal(unitPrice float64, qty int) float64 {
	unit := decimal.NewFromFloat(unitPrice)
	total := unit.Mul(decimal.NewFromInt(int64(qty)))
	return total.Round(2).InexactFloat64()
}

// Average divides a total by a count in decimal space. A zero or negative
// count yields zero.
func Average(total float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	avg := decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(count)))
	return avg.Round(2).InexactFloat64()
}

// Sum adds a list of amounts in decimal space and rounds the result.
func Sum(amounts []float64) float64 {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(decimal.NewFromFloat(amount))
	}
	return total.Round(2).InexactFloat64()
}
