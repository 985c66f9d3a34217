// Package source reads the five flat e-commerce exports the normalizer
// consumes. Rows are decoded by header name so the source files may carry
// extra columns or a different column order.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/multierr"

	pkgerrors "shopnorm/pkg/errors"
)

const (
	CustomersFile      = "customers.csv"
	ProductsFile       = "products.csv"
	OrdersFile         = "orders.csv"
	OrderItemsFile     = "order_items.csv"
	ProductReviewsFile = "product_reviews.csv"
)

type Customer struct {
	CustomerID int
	Name       string
	Email      string
	Gender     string
	Country    string
	SignupDate string
}

type Product struct {
	ProductID     int
	ProductName   string
	Category      string
	Brand         string
	Price         string
	StockQuantity string
}

type Order struct {
	OrderID       int
	CustomerID    int
	OrderDate     string
	PaymentMethod string
	TotalAmount   string
}

type OrderItem struct {
	OrderItemID int
	ProductID   int
	OrderID     int
	Quantity    string
	UnitPrice   string
}

type ProductReview struct {
	ReviewID   int
	ProductID  int
	CustomerID int
	Rating     string
	ReviewText string
	ReviewDate string
}

// Tables holds every source table for one pipeline run.
type Tables struct {
	Customers      []Customer
	Products       []Product
	Orders         []Order
	OrderItems     []OrderItem
	ProductReviews []ProductReview
}

// Load reads all five source files from dir. Failures across files are
// combined so one run reports everything that is wrong with the input set.
func Load(dir string) (*Tables, error) {
	var (
		t       Tables
		loadErr error
	)

	err := readFile(dir, CustomersFile,
		[]string{"customer_id", "name", "email", "gender", "country", "signup_date"},
		func(get fieldFunc) error {
			id, err := get.intField("customer_id")
			if err != nil {
				return err
			}
			t.Customers = append(t.Customers, Customer{
				CustomerID: id,
				Name:       get("name"),
				Email:      get("email"),
				Gender:     get("gender"),
				Country:    get("country"),
				SignupDate: get("signup_date"),
			})
			return nil
		})
	loadErr = multierr.Append(loadErr, err)

	err = readFile(dir, ProductsFile,
		[]string{"product_id", "product_name", "category", "brand", "price", "stock_quantity"},
		func(get fieldFunc) error {
			id, err := get.intField("product_id")
			if err != nil {
				return err
			}
			t.Products = append(t.Products, Product{
				ProductID:     id,
				ProductName:   get("product_name"),
				Category:      get("category"),
				Brand:         get("brand"),
				Price:         get("price"),
				StockQuantity: get("stock_quantity"),
			})
			return nil
		})
	loadErr = multierr.Append(loadErr, err)

	err = readFile(dir, OrdersFile,
		[]string{"order_id", "customer_id", "order_date", "payment_method", "total_amount"},
		func(get fieldFunc) error {
			orderID, err := get.intField("order_id")
			if err != nil {
				return err
			}
			customerID, err := get.intField("customer_id")
			if err != nil {
				return err
			}
			t.Orders = append(t.Orders, Order{
				OrderID:       orderID,
				CustomerID:    customerID,
				OrderDate:     get("order_date"),
				PaymentMethod: get("payment_method"),
				TotalAmount:   get("total_amount"),
			})
			return nil
		})
	loadErr = multierr.Append(loadErr, err)

	err = readFile(dir, OrderItemsFile,
		[]string{"order_item_id", "product_id", "order_id", "quantity", "unit_price"},
		func(get fieldFunc) error {
			itemID, err := get.intField("order_item_id")
			if err != nil {
				return err
			}
			productID, err := get.intField("product_id")
			if err != nil {
				return err
			}
			orderID, err := get.intField("order_id")
			if err != nil {
				return err
			}
			t.OrderItems = append(t.OrderItems, OrderItem{
				OrderItemID: itemID,
				ProductID:   productID,
				OrderID:     orderID,
				Quantity:    get("quantity"),
				UnitPrice:   get("unit_price"),
			})
			return nil
		})
	loadErr = multierr.Append(loadErr, err)

	err = readFile(dir, ProductReviewsFile,
		[]string{"review_id", "product_id", "customer_id", "rating", "review_text", "review_date"},
		func(get fieldFunc) error {
			reviewID, err := get.intField("review_id")
			if err != nil {
				return err
			}
			productID, err := get.intField("product_id")
			if err != nil {
				return err
			}
			customerID, err := get.intField("customer_id")
			if err != nil {
				return err
			}
			t.ProductReviews = append(t.ProductReviews, ProductReview{
				ReviewID:   reviewID,
				ProductID:  productID,
				CustomerID: customerID,
				Rating:     get("rating"),
				ReviewText: get("review_text"),
				ReviewDate: get("review_date"),
			})
			return nil
		})
	loadErr = multierr.Append(loadErr, err)

	if loadErr != nil {
		return nil, loadErr
	}
	return &t, nil
}

// fieldFunc returns a named field of the current record.
type fieldFunc func(column string) string

func (get fieldFunc) intField(column string) (int, error) {
	raw := get(column)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("column %s: not an integer: %q", column, raw))
	}
	return v, nil
}

// readFile streams one source CSV, calling decode once per data row. A file
// with no data rows, or an entirely empty file, yields zero rows and no
// error; missing files and missing required columns are fatal.
func readFile(dir, name string, required []string, decode func(fieldFunc) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeMissingSource, err, fmt.Sprintf("opening %s", name))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("reading %s header", name))
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return pkgerrors.New(pkgerrors.CodeBadRecord, fmt.Sprintf("%s: missing required column %q", name, col))
		}
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("reading %s", name))
		}
		line++

		get := fieldFunc(func(column string) string {
			i, ok := index[column]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		})
		if err := decode(get); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("%s line %d", name, line))
		}
	}
}
