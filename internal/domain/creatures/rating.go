package creatures

import "github.com/shopspring/decimal"

// AverageRating devuelve el promedio en punto fijo de sum/count.
// Sin reviews devuelve exactamente cero (no un valor ausente).
func AverageRating(sum, count int64) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(count))
}
