package synth

import (
	"github.com/shopspring/decimal"

	"shopnorm/internal/schema"
	"shopnorm/internal/source"
	"shopnorm/pkg/enums"
)

var shippingStatusDist = mustWeighted(
	enums.ShippingStatuses(),
	[]float64{0.05, 0.05, 0.10, 0.10, 0.65, 0.05},
)

const (
	shippingCostMin = 5.0
	shippingCostMax = 50.0
)

// GenerateShipping produces exactly one shipping row per order, in source
// order, with shipping ids counting up from 1. Orders whose customer has no
// address get a lazily created default through the book, which the shipping
// stage owns from here on; the returned book holds the final address table.
func GenerateShipping(r *Rand, orders []source.Order, book *AddressBook) []schema.Shipping {
	shippings := make([]schema.Shipping, 0, len(orders))
	for i, order := range orders {
		addrID := book.EnsureDefault(order.CustomerID)

		cost := decimal.NewFromFloat(r.Float64Between(shippingCostMin, shippingCostMax)).Round(2)
		status := shippingStatusDist.Draw(r)

		shippings = append(shippings, schema.Shipping{
			ShippingID:        i + 1,
			CustomerAddressID: addrID,
			ShippingStatus:    status,
			ShippingCost:      cost,
		})
	}
	return shippings
}
