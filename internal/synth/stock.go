package synth

import (
	"time"

	"shopnorm/internal/schema"
	"shopnorm/pkg/config"
	"shopnorm/pkg/enums"
)

var movementTypeDist = mustWeighted(
	enums.StockMovementTypes(),
	[]float64{0.4, 0.5, 0.1},
)

// GenerateStock fabricates a sparse movement history: a sampled subset of
// products gets 1-5 records each, quantity ranges conditioned on the
// movement type, dates uniform within the configured window. Unsampled
// products have no history at all.
func GenerateStock(r *Rand, productIDs []int, fraction float64, start, end time.Time) []schema.Stock {
	days := int(end.Sub(start).Hours() / 24)

	var stocks []schema.Stock
	stockID := 1
	for _, prodID := range r.Sample(productIDs, fraction) {
		n := r.IntBetween(1, 5)
		for i := 0; i < n; i++ {
			movement := movementTypeDist.Draw(r)

			var qty int
			switch movement {
			case enums.StockMovementIn:
				qty = r.IntBetween(10, 500)
			case enums.StockMovementOut:
				qty = -r.IntBetween(1, 100)
			default:
				qty = r.IntBetween(-50, 50)
			}

			changeDate := start.AddDate(0, 0, r.IntBetween(0, days))

			stocks = append(stocks, schema.Stock{
				StockID:        stockID,
				ProductID:      prodID,
				QuantityChange: qty,
				MovementType:   movement,
				ChangeDate:     changeDate.Format(config.DateFormat),
			})
			stockID++
		}
	}
	return stocks
}
