package synth

import "shopnorm/internal/schema"

// StoreNames is the fixed set of fabricated stores. Products are assigned to
// stores uniformly because the source data has no store column to map from.
var StoreNames = []string{
	"TechMart Central", "Fashion Hub", "BookWorm Paradise",
	"Beauty Corner", "Toy Kingdom", "Home Essentials",
	"Sports Zone", "Gadget World", "Style Avenue", "Daily Needs",
}

// StoreRows materializes the store dimension table.
func StoreRows() []schema.Store {
	rows := make([]schema.Store, 0, len(StoreNames))
	for i, name := range StoreNames {
		rows = append(rows, schema.Store{StoreID: i + 1, Name: name})
	}
	return rows
}

// AssignStoreIDs draws one uniform store id per product.
func AssignStoreIDs(r *Rand, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = r.IntBetween(1, len(StoreNames))
	}
	return ids
}
