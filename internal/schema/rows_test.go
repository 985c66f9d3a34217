package schema

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shopnorm/pkg/enums"
)

func TestNullIDRendersEmpty(t *testing.T) {
	cust := Customer{
		CustomerID: 5,
		CountryID:  NullID{},
		Name:       "Jane",
		Email:      "jane@example.com",
		Gender:     "F",
		SignupDate: "2023-04-01",
	}
	assert.Equal(t, []string{"5", "", "Jane", "jane@example.com", "F", "2023-04-01"}, cust.Record())

	cust.CountryID = ID(2)
	assert.Equal(t, "2", cust.Record()[1])
}

func TestProductRecordPassesThroughSourceFields(t *testing.T) {
	prod := Product{
		ProductID:     3,
		StoreID:       7,
		CategoryID:    ID(1),
		BrandID:       NullID{},
		Name:          "Laptop",
		Price:         "999.990",
		StockQuantity: "12",
	}
	// price and stock_quantity are kept byte-identical to the source values
	assert.Equal(t, []string{"3", "7", "1", "", "Laptop", "999.990", "12"}, prod.Record())
}

func TestShippingRecordFormatsCost(t *testing.T) {
	s := Shipping{
		ShippingID:        1,
		CustomerAddressID: 9,
		ShippingStatus:    enums.ShippingStatusDelivered,
		ShippingCost:      decimal.NewFromFloat(7.5),
	}
	assert.Equal(t, []string{"1", "9", "Delivered", "7.50"}, s.Record())
}

func TestRowCountsCoversAllTables(t *testing.T) {
	d := &Dataset{
		Countries: []Country{{CountryID: 1, Name: "USA"}},
		Orders:    []Order{{OrderID: 1}, {OrderID: 2}},
	}

	counts := d.RowCounts()
	assert.Len(t, counts, len(AllTables()))
	assert.Equal(t, 1, counts[CountryTable.Name])
	assert.Equal(t, 2, counts[OrderTable.Name])
	assert.Equal(t, 0, counts[StockTable.Name])
}
