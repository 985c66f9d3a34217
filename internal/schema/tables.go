// Package schema fixes the output contract of the normalizer: one table
// definition per generated entity, with file names and column order matching
// what the downstream reporting layer imports verbatim.
package schema

// Table names a generated entity and the exact column order of its file.
type Table struct {
	Name    string
	Columns []string
}

// FileName returns the flat-file name for the table.
func (t Table) FileName() string {
	return t.Name + ".csv"
}

var (
	CountryTable = Table{
		Name:    "country",
		Columns: []string{"country_id", "name"},
	}
	CategoryTable = Table{
		Name:    "category",
		Columns: []string{"category_id", "name"},
	}
	BrandTable = Table{
		Name:    "brand",
		Columns: []string{"brand_id", "name"},
	}
	StoreTable = Table{
		Name:    "store",
		Columns: []string{"store_id", "name"},
	}
	CustomerTable = Table{
		Name:    "customer",
		Columns: []string{"customer_id", "country_id", "name", "email", "gender", "signup_date"},
	}
	CustomerAddressTable = Table{
		Name:    "customer_address",
		Columns: []string{"customer_address_id", "customer_id", "address"},
	}
	ShippingTable = Table{
		Name:    "shipping",
		Columns: []string{"shipping_id", "customer_address_id", "shipping_status", "shipping_cost"},
	}
	ProductTable = Table{
		Name:    "product",
		Columns: []string{"product_id", "store_id", "category_id", "brand_id", "name", "price", "stock_quantity"},
	}
	OrderTable = Table{
		Name:    "order",
		Columns: []string{"order_id", "customer_id", "shipping_id", "order_date", "payment_method", "total_amount", "order_status"},
	}
	OrderItemsTable = Table{
		Name:    "order_items",
		Columns: []string{"order_items_id", "product_id", "order_id", "quantity", "unit_price"},
	}
	ProductReviewTable = Table{
		Name:    "product_review",
		Columns: []string{"review_id", "product_id", "customer_id", "rating", "review_text", "review_date"},
	}
	StockTable = Table{
		Name:    "stock",
		Columns: []string{"stock_id", "product_id", "quantity_change", "movement_type", "change_date"},
	}
)

// AllTables lists every generated table in write order. Load order for the
// database importer follows the same sequence, which respects the FK graph.
func AllTables() []Table {
	return []Table{
		CountryTable,
		CategoryTable,
		BrandTable,
		StoreTable,
		CustomerTable,
		CustomerAddressTable,
		ShippingTable,
		ProductTable,
		OrderTable,
		OrderItemsTable,
		ProductReviewTable,
		StockTable,
	}
}
