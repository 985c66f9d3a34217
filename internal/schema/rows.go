package schema

import (
	"strconv"

	"github.com/shopspring/decimal"

	"shopnorm/pkg/enums"
)

// NullID is a nullable surrogate-key reference. Unmapped values render as an
// empty field rather than being dropped or defaulted.
type NullID struct {
	Value int
	Valid bool
}

// ID wraps a resolved reference.
func ID(v int) NullID {
	return NullID{Value: v, Valid: true}
}

func (n NullID) record() string {
	if !n.Valid {
		return ""
	}
	return strconv.Itoa(n.Value)
}

type Country struct {
	CountryID int
	Name      string
}

func (r Country) Record() []string {
	return []string{strconv.Itoa(r.CountryID), r.Name}
}

type Category struct {
	CategoryID int
	Name       string
}

func (r Category) Record() []string {
	return []string{strconv.Itoa(r.CategoryID), r.Name}
}

type Brand struct {
	BrandID int
	Name    string
}

func (r Brand) Record() []string {
	return []string{strconv.Itoa(r.BrandID), r.Name}
}

type Store struct {
	StoreID int
	Name    string
}

func (r Store) Record() []string {
	return []string{strconv.Itoa(r.StoreID), r.Name}
}

// Customer keeps its source key; only country_id is new. The descriptive
// columns pass through byte-identical to the source file.
type Customer struct {
	CustomerID int
	CountryID  NullID
	Name       string
	Email      string
	Gender     string
	SignupDate string
}

func (r Customer) Record() []string {
	return []string{
		strconv.Itoa(r.CustomerID),
		r.CountryID.record(),
		r.Name,
		r.Email,
		r.Gender,
		r.SignupDate,
	}
}

type CustomerAddress struct {
	CustomerAddressID int
	CustomerID        int
	Address           string
}

func (r CustomerAddress) Record() []string {
	return []string{strconv.Itoa(r.CustomerAddressID), strconv.Itoa(r.CustomerID), r.Address}
}

type Shipping struct {
	ShippingID        int
	CustomerAddressID int
	ShippingStatus    enums.ShippingStatus
	ShippingCost      decimal.Decimal
}

func (r Shipping) Record() []string {
	return []string{
		strconv.Itoa(r.ShippingID),
		strconv.Itoa(r.CustomerAddressID),
		r.ShippingStatus.String(),
		r.ShippingCost.StringFixed(2),
	}
}

type Product struct {
	ProductID     int
	StoreID       int
	CategoryID    NullID
	BrandID       NullID
	Name          string
	Price         string
	StockQuantity string
}

func (r Product) Record() []string {
	return []string{
		strconv.Itoa(r.ProductID),
		strconv.Itoa(r.StoreID),
		r.CategoryID.record(),
		r.BrandID.record(),
		r.Name,
		r.Price,
		r.StockQuantity,
	}
}

type Order struct {
	OrderID       int
	CustomerID    int
	ShippingID    int
	OrderDate     string
	PaymentMethod string
	TotalAmount   string
	OrderStatus   enums.OrderStatus
}

func (r Order) Record() []string {
	return []string{
		strconv.Itoa(r.OrderID),
		strconv.Itoa(r.CustomerID),
		strconv.Itoa(r.ShippingID),
		r.OrderDate,
		r.PaymentMethod,
		r.TotalAmount,
		r.OrderStatus.String(),
	}
}

type OrderItem struct {
	OrderItemsID int
	ProductID    int
	OrderID      int
	Quantity     string
	UnitPrice    string
}

func (r OrderItem) Record() []string {
	return []string{
		strconv.Itoa(r.OrderItemsID),
		strconv.Itoa(r.ProductID),
		strconv.Itoa(r.OrderID),
		r.Quantity,
		r.UnitPrice,
	}
}

type ProductReview struct {
	ReviewID   int
	ProductID  int
	CustomerID int
	Rating     string
	ReviewText string
	ReviewDate string
}

func (r ProductReview) Record() []string {
	return []string{
		strconv.Itoa(r.ReviewID),
		strconv.Itoa(r.ProductID),
		strconv.Itoa(r.CustomerID),
		r.Rating,
		r.ReviewText,
		r.ReviewDate,
	}
}

type Stock struct {
	StockID        int
	ProductID      int
	QuantityChange int
	MovementType   enums.StockMovementType
	ChangeDate     string
}

func (r Stock) Record() []string {
	return []string{
		strconv.Itoa(r.StockID),
		strconv.Itoa(r.ProductID),
		strconv.Itoa(r.QuantityChange),
		r.MovementType.String(),
		r.ChangeDate,
	}
}

// Dataset is the complete generated output: one slice per table, ready to be
// written in AllTables order.
type Dataset struct {
	Countries         []Country
	Categories        []Category
	Brands            []Brand
	Stores            []Store
	Customers         []Customer
	CustomerAddresses []CustomerAddress
	Shippings         []Shipping
	Products          []Product
	Orders            []Order
	OrderItems        []OrderItem
	ProductReviews    []ProductReview
	Stocks            []Stock
}

// RowCounts maps table name to generated row count, for the run report.
func (d *Dataset) RowCounts() map[string]int {
	return map[string]int{
		CountryTable.Name:         len(d.Countries),
		CategoryTable.Name:        len(d.Categories),
		BrandTable.Name:           len(d.Brands),
		StoreTable.Name:           len(d.Stores),
		CustomerTable.Name:        len(d.Customers),
		CustomerAddressTable.Name: len(d.CustomerAddresses),
		ShippingTable.Name:        len(d.Shippings),
		ProductTable.Name:         len(d.Products),
		OrderTable.Name:           len(d.Orders),
		OrderItemsTable.Name:      len(d.OrderItems),
		ProductReviewTable.Name:   len(d.ProductReviews),
		StockTable.Name:           len(d.Stocks),
	}
}

func records[T interface{ Record() []string }](rows []T) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out
}
