package schema

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pkgerrors "shopnorm/pkg/errors"
)

// WriteTable writes one table as a flat file with a header row. Output is
// deterministic: same rows in, same bytes out.
func WriteTable(dir string, table Table, rows [][]string) error {
	path := filepath.Join(dir, table.FileName())
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeOutput, err, fmt.Sprintf("creating %s", table.FileName()))
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeOutput, err, fmt.Sprintf("writing %s header", table.Name))
	}
	for _, record := range rows {
		if len(record) != len(table.Columns) {
			return pkgerrors.New(pkgerrors.CodeInternal,
				fmt.Sprintf("table %s: record has %d fields, schema has %d", table.Name, len(record), len(table.Columns)))
		}
		if err := w.Write(record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeOutput, err, fmt.Sprintf("writing %s record", table.Name))
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeOutput, err, fmt.Sprintf("flushing %s", table.FileName()))
	}
	if err := f.Close(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeOutput, err, fmt.Sprintf("closing %s", table.FileName()))
	}
	return nil
}

// ReadTable reads a previously generated table back, verifying the header
// matches the schema exactly. Used by the database importer.
func ReadTable(dir string, table Table) ([][]string, error) {
	path := filepath.Join(dir, table.FileName())
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeMissingSource, err, fmt.Sprintf("opening %s", table.FileName()))
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, pkgerrors.New(pkgerrors.CodeBadRecord, fmt.Sprintf("%s: missing header row", table.FileName()))
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("reading %s header", table.FileName()))
	}
	if len(header) != len(table.Columns) {
		return nil, pkgerrors.New(pkgerrors.CodeBadRecord,
			fmt.Sprintf("%s: expected %d columns, found %d", table.FileName(), len(table.Columns), len(header)))
	}
	for i, col := range table.Columns {
		if header[i] != col {
			return nil, pkgerrors.New(pkgerrors.CodeBadRecord,
				fmt.Sprintf("%s: column %d is %q, expected %q", table.FileName(), i, header[i], col))
		}
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("reading %s", table.FileName()))
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// Write persists the full dataset into dir, one file per table.
func (d *Dataset) Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeOutput, err, fmt.Sprintf("creating output dir %s", dir))
	}

	writes := []struct {
		table Table
		rows  [][]string
	}{
		{CountryTable, records(d.Countries)},
		{CategoryTable, records(d.Categories)},
		{BrandTable, records(d.Brands)},
		{StoreTable, records(d.Stores)},
		{CustomerTable, records(d.Customers)},
		{CustomerAddressTable, records(d.CustomerAddresses)},
		{ShippingTable, records(d.Shippings)},
		{ProductTable, records(d.Products)},
		{OrderTable, records(d.Orders)},
		{OrderItemsTable, records(d.OrderItems)},
		{ProductReviewTable, records(d.ProductReviews)},
		{StockTable, records(d.Stocks)},
	}
	for _, w := range writes {
		if err := WriteTable(dir, w.table, w.rows); err != nil {
			return err
		}
	}
	return nil
}
