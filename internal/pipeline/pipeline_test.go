package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopnorm/internal/schema"
	"shopnorm/internal/source"
	"shopnorm/pkg/config"
)

func genConfig(seed int64) config.GenerateConfig {
	return config.GenerateConfig{
		Seed:            seed,
		AddressFraction: 0.7,
		StockFraction:   0.3,
		StockDateStart:  "2021-01-01",
		StockDateEnd:    "2025-12-01",
	}
}

// fixtureTables builds a source set large enough to exercise sampling.
func fixtureTables() *source.Tables {
	t := &source.Tables{}
	countries := []string{"USA", "France", "Indonesia", "USA", "Germany"}
	for i := 1; i <= 50; i++ {
		t.Customers = append(t.Customers, source.Customer{
			CustomerID: i,
			Name:       fmt.Sprintf("Customer %d", i),
			Email:      fmt.Sprintf("c%d@example.com", i),
			Gender:     "F",
			Country:    countries[i%len(countries)],
			SignupDate: "2022-03-15",
		})
	}
	categories := []string{"Electronics", "Books", "Toys"}
	brands := []string{"Acme", "Globex"}
	for i := 1; i <= 40; i++ {
		t.Products = append(t.Products, source.Product{
			ProductID:     i,
			ProductName:   fmt.Sprintf("Product %d", i),
			Category:      categories[i%len(categories)],
			Brand:         brands[i%len(brands)],
			Price:         "19.99",
			StockQuantity: "100",
		})
	}
	for i := 1; i <= 30; i++ {
		t.Orders = append(t.Orders, source.Order{
			OrderID:       i,
			CustomerID:    (i % 50) + 1,
			OrderDate:     "2023-06-01",
			PaymentMethod: "Credit Card",
			TotalAmount:   "59.97",
		})
	}
	for i := 1; i <= 60; i++ {
		t.OrderItems = append(t.OrderItems, source.OrderItem{
			OrderItemID: i,
			ProductID:   (i % 40) + 1,
			OrderID:     (i % 30) + 1,
			Quantity:    "3",
			UnitPrice:   "19.99",
		})
	}
	for i := 1; i <= 20; i++ {
		t.ProductReviews = append(t.ProductReviews, source.ProductReview{
			ReviewID:   i,
			ProductID:  (i % 40) + 1,
			CustomerID: (i % 50) + 1,
			Rating:     "4",
			ReviewText: "Solid",
			ReviewDate: "2023-07-01",
		})
	}
	return t
}

func TestBuildDeterministic(t *testing.T) {
	first, _, err := Build(fixtureTables(), genConfig(42))
	require.NoError(t, err)
	second, _, err := Build(fixtureTables(), genConfig(42))
	require.NoError(t, err)

	dirA := filepath.Join(t.TempDir(), "a")
	dirB := filepath.Join(t.TempDir(), "b")
	require.NoError(t, first.Write(dirA))
	require.NoError(t, second.Write(dirB))

	for _, table := range schema.AllTables() {
		a, err := os.ReadFile(filepath.Join(dirA, table.FileName()))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, table.FileName()))
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s differs between runs with the same seed", table.FileName())
	}
}

func TestBuildSeedChangesSynthesizedTables(t *testing.T) {
	first, _, err := Build(fixtureTables(), genConfig(42))
	require.NoError(t, err)
	second, _, err := Build(fixtureTables(), genConfig(43))
	require.NoError(t, err)

	// Dimensions come from the data, not the seed.
	assert.Equal(t, first.Countries, second.Countries)
	assert.Equal(t, first.Categories, second.Categories)
	assert.Equal(t, first.Brands, second.Brands)
	assert.NotEqual(t, first.CustomerAddresses, second.CustomerAddresses)
}

func TestBuildFirstOccurrenceDimensions(t *testing.T) {
	src := &source.Tables{
		Customers: []source.Customer{
			{CustomerID: 1, Country: "USA"},
			{CustomerID: 2, Country: "USA"},
			{CustomerID: 3, Country: "France"},
		},
	}

	ds, _, err := Build(src, genConfig(42))
	require.NoError(t, err)

	require.Len(t, ds.Countries, 2)
	assert.Equal(t, schema.Country{CountryID: 1, Name: "USA"}, ds.Countries[0])
	assert.Equal(t, schema.Country{CountryID: 2, Name: "France"}, ds.Countries[1])

	assert.Equal(t, schema.ID(1), ds.Customers[0].CountryID)
	assert.Equal(t, schema.ID(1), ds.Customers[1].CountryID)
	assert.Equal(t, schema.ID(2), ds.Customers[2].CountryID)
}

func TestBuildEmptyCountryStaysNull(t *testing.T) {
	src := &source.Tables{
		Customers: []source.Customer{
			{CustomerID: 1, Country: ""},
			{CustomerID: 2, Country: "USA"},
		},
	}

	ds, report, err := Build(src, genConfig(42))
	require.NoError(t, err)

	require.Len(t, ds.Countries, 1, "empty value must not become a dimension entry")
	assert.False(t, ds.Customers[0].CountryID.Valid)
	assert.Equal(t, schema.ID(1), ds.Customers[1].CountryID)
	assert.Empty(t, report.Unmapped, "null source value is not an unmapped value")
}

func TestBuildShippingOnePerOrder(t *testing.T) {
	ds, _, err := Build(fixtureTables(), genConfig(42))
	require.NoError(t, err)

	require.Len(t, ds.Shippings, len(ds.Orders))
	for i, o := range ds.Orders {
		assert.Equal(t, i+1, o.ShippingID)
		assert.Equal(t, i+1, ds.Shippings[i].ShippingID)
	}
}

func TestBuildReferentialIntegrity(t *testing.T) {
	ds, _, err := Build(fixtureTables(), genConfig(42))
	require.NoError(t, err)

	countryIDs := make(map[int]bool)
	for _, c := range ds.Countries {
		countryIDs[c.CountryID] = true
	}
	customerIDs := make(map[int]bool)
	for _, c := range ds.Customers {
		if c.CountryID.Valid {
			assert.True(t, countryIDs[c.CountryID.Value])
		}
		customerIDs[c.CustomerID] = true
	}

	addressIDs := make(map[int]bool)
	for i, a := range ds.CustomerAddresses {
		assert.Equal(t, i+1, a.CustomerAddressID, "address ids must be dense")
		assert.True(t, customerIDs[a.CustomerID])
		addressIDs[a.CustomerAddressID] = true
	}
	for _, s := range ds.Shippings {
		assert.True(t, addressIDs[s.CustomerAddressID])
	}

	categoryIDs := make(map[int]bool)
	for _, c := range ds.Categories {
		categoryIDs[c.CategoryID] = true
	}
	brandIDs := make(map[int]bool)
	for _, b := range ds.Brands {
		brandIDs[b.BrandID] = true
	}
	productIDs := make(map[int]bool)
	for _, p := range ds.Products {
		if p.CategoryID.Valid {
			assert.True(t, categoryIDs[p.CategoryID.Value])
		}
		if p.BrandID.Valid {
			assert.True(t, brandIDs[p.BrandID.Value])
		}
		assert.True(t, p.StoreID >= 1 && p.StoreID <= len(ds.Stores))
		productIDs[p.ProductID] = true
	}

	orderIDs := make(map[int]bool)
	for _, o := range ds.Orders {
		assert.True(t, customerIDs[o.CustomerID])
		orderIDs[o.OrderID] = true
	}
	for _, it := range ds.OrderItems {
		assert.True(t, productIDs[it.ProductID])
		assert.True(t, orderIDs[it.OrderID])
	}
	for _, rv := range ds.ProductReviews {
		assert.True(t, productIDs[rv.ProductID])
		assert.True(t, customerIDs[rv.CustomerID])
	}
	for _, s := range ds.Stocks {
		assert.True(t, productIDs[s.ProductID])
	}
}

func TestBuildPreservesSourceRowCounts(t *testing.T) {
	src := fixtureTables()
	ds, report, err := Build(src, genConfig(42))
	require.NoError(t, err)

	assert.Len(t, ds.Customers, len(src.Customers))
	assert.Len(t, ds.Products, len(src.Products))
	assert.Len(t, ds.Orders, len(src.Orders))
	assert.Len(t, ds.OrderItems, len(src.OrderItems))
	assert.Len(t, ds.ProductReviews, len(src.ProductReviews))

	assert.Equal(t, len(src.Orders), report.RowCounts["shipping"])
	assert.Equal(t, 10, report.RowCounts["store"])
}

func TestBuildAddresslessCustomerGetsOneDefault(t *testing.T) {
	// One customer, zero address fraction, two orders: the first order creates
	// the default address and the second reuses it.
	src := &source.Tables{
		Customers: []source.Customer{{CustomerID: 1, Country: "USA"}},
		Orders: []source.Order{
			{OrderID: 10, CustomerID: 1, OrderDate: "2023-01-01"},
			{OrderID: 11, CustomerID: 1, OrderDate: "2023-01-02"},
		},
	}
	gen := genConfig(42)
	gen.AddressFraction = 0

	ds, report, err := Build(src, gen)
	require.NoError(t, err)

	require.Len(t, ds.CustomerAddresses, 1)
	assert.Equal(t, "Default Address for Customer 1", ds.CustomerAddresses[0].Address)
	assert.Equal(t, 0, report.AddressedCustomers)
	assert.Equal(t, 1, report.DefaultAddresses)
	require.Len(t, ds.Shippings, 2)
	assert.Equal(t, ds.Shippings[0].CustomerAddressID, ds.Shippings[1].CustomerAddressID)
}

func TestBuildSamplingCounts(t *testing.T) {
	_, report, err := Build(fixtureTables(), genConfig(42))
	require.NoError(t, err)

	assert.Equal(t, 35, report.AddressedCustomers, "round(0.7*50)")
	assert.Equal(t, 12, report.StockedProducts, "round(0.3*40)")
}

func TestBuildBadDateWindow(t *testing.T) {
	gen := genConfig(42)
	gen.StockDateEnd = "not-a-date"

	_, _, err := Build(fixtureTables(), gen)
	assert.Error(t, err)
}

func TestBuildEmptySources(t *testing.T) {
	ds, report, err := Build(&source.Tables{}, genConfig(42))
	require.NoError(t, err)

	assert.Empty(t, ds.Customers)
	assert.Empty(t, ds.Shippings)
	assert.Len(t, ds.Stores, 10, "store dimension is fixed regardless of input")
	assert.Equal(t, 0, report.AddressedCustomers)
}
