package loader

import (
	"fmt"
	"strconv"
	"time"

	"shopnorm/internal/schema"
)

// tableSpec pairs a table with the typed conversion CopyFrom needs.
type tableSpec struct {
	table   schema.Table
	convert func(record []string) ([]any, error)
}

// tableSpecs returns the import plan in FK-dependency order, mirroring
// schema.AllTables.
func tableSpecs() []tableSpec {
	return []tableSpec{
		{schema.CountryTable, convertLookup},
		{schema.CategoryTable, convertLookup},
		{schema.BrandTable, convertLookup},
		{schema.StoreTable, convertLookup},
		{schema.CustomerTable, convertCustomer},
		{schema.CustomerAddressTable, convertCustomerAddress},
		{schema.ShippingTable, convertShipping},
		{schema.ProductTable, convertProduct},
		{schema.OrderTable, convertOrder},
		{schema.OrderItemsTable, convertOrderItem},
		{schema.ProductReviewTable, convertProductReview},
		{schema.StockTable, convertStock},
	}
}

// dateLayouts covers the formats seen in the source exports. Generated dates
// always use the first layout.
var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05"}

func parseInt(field, value string) (int64, error) {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not an integer: %q", field, value)
	}
	return v, nil
}

func parseNullableInt(field, value string) (any, error) {
	if value == "" {
		return nil, nil
	}
	return parseInt(field, value)
}

func parseFloat(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %q", field, value)
	}
	return v, nil
}

func parseNullableFloat(field, value string) (any, error) {
	if value == "" {
		return nil, nil
	}
	return parseFloat(field, value)
}

func parseDate(field, value string) (any, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%s: unrecognized date %q", field, value)
}

func convertLookup(record []string) ([]any, error) {
	id, err := parseInt("id", record[0])
	if err != nil {
		return nil, err
	}
	return []any{id, record[1]}, nil
}

func convertCustomer(record []string) ([]any, error) {
	customerID, err := parseInt("customer_id", record[0])
	if err != nil {
		return nil, err
	}
	countryID, err := parseNullableInt("country_id", record[1])
	if err != nil {
		return nil, err
	}
	signup, err := parseDate("signup_date", record[5])
	if err != nil {
		return nil, err
	}
	return []any{customerID, countryID, record[2], record[3], record[4], signup}, nil
}

func convertCustomerAddress(record []string) ([]any, error) {
	addressID, err := parseInt("customer_address_id", record[0])
	if err != nil {
		return nil, err
	}
	customerID, err := parseInt("customer_id", record[1])
	if err != nil {
		return nil, err
	}
	return []any{addressID, customerID, record[2]}, nil
}

func convertShipping(record []string) ([]any, error) {
	shippingID, err := parseInt("shipping_id", record[0])
	if err != nil {
		return nil, err
	}
	addressID, err := parseInt("customer_address_id", record[1])
	if err != nil {
		return nil, err
	}
	cost, err := parseFloat("shipping_cost", record[3])
	if err != nil {
		return nil, err
	}
	return []any{shippingID, addressID, record[2], cost}, nil
}

func convertProduct(record []string) ([]any, error) {
	productID, err := parseInt("product_id", record[0])
	if err != nil {
		return nil, err
	}
	storeID, err := parseInt("store_id", record[1])
	if err != nil {
		return nil, err
	}
	categoryID, err := parseNullableInt("category_id", record[2])
	if err != nil {
		return nil, err
	}
	brandID, err := parseNullableInt("brand_id", record[3])
	if err != nil {
		return nil, err
	}
	price, err := parseNullableFloat("price", record[5])
	if err != nil {
		return nil, err
	}
	qty, err := parseNullableInt("stock_quantity", record[6])
	if err != nil {
		return nil, err
	}
	return []any{productID, storeID, categoryID, brandID, record[4], price, qty}, nil
}

func convertOrder(record []string) ([]any, error) {
	orderID, err := parseInt("order_id", record[0])
	if err != nil {
		return nil, err
	}
	customerID, err := parseInt("customer_id", record[1])
	if err != nil {
		return nil, err
	}
	shippingID, err := parseInt("shipping_id", record[2])
	if err != nil {
		return nil, err
	}
	orderDate, err := parseDate("order_date", record[3])
	if err != nil {
		return nil, err
	}
	total, err := parseNullableFloat("total_amount", record[5])
	if err != nil {
		return nil, err
	}
	return []any{orderID, customerID, shippingID, orderDate, record[4], total, record[6]}, nil
}

func convertOrderItem(record []string) ([]any, error) {
	itemID, err := parseInt("order_items_id", record[0])
	if err != nil {
		return nil, err
	}
	productID, err := parseInt("product_id", record[1])
	if err != nil {
		return nil, err
	}
	orderID, err := parseInt("order_id", record[2])
	if err != nil {
		return nil, err
	}
	qty, err := parseNullableInt("quantity", record[3])
	if err != nil {
		return nil, err
	}
	unitPrice, err := parseNullableFloat("unit_price", record[4])
	if err != nil {
		return nil, err
	}
	return []any{itemID, productID, orderID, qty, unitPrice}, nil
}

func convertProductReview(record []string) ([]any, error) {
	reviewID, err := parseInt("review_id", record[0])
	if err != nil {
		return nil, err
	}
	productID, err := parseInt("product_id", record[1])
	if err != nil {
		return nil, err
	}
	customerID, err := parseInt("customer_id", record[2])
	if err != nil {
		return nil, err
	}
	rating, err := parseNullableFloat("rating", record[3])
	if err != nil {
		return nil, err
	}
	reviewDate, err := parseDate("review_date", record[5])
	if err != nil {
		return nil, err
	}
	return []any{reviewID, productID, customerID, rating, record[4], reviewDate}, nil
}

func convertStock(record []string) ([]any, error) {
	stockID, err := parseInt("stock_id", record[0])
	if err != nil {
		return nil, err
	}
	productID, err := parseInt("product_id", record[1])
	if err != nil {
		return nil, err
	}
	qtyChange, err := parseInt("quantity_change", record[2])
	if err != nil {
		return nil, err
	}
	changeDate, err := parseDate("change_date", record[4])
	if err != nil {
		return nil, err
	}
	return []any{stockID, productID, qtyChange, record[3], changeDate}, nil
}
