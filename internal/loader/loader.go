// Package loader imports the generated tables into PostgreSQL. Tables are
// created by the goose migrations; import runs over pgx CopyFrom in the same
// order the files are written, which respects the foreign-key graph.
package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"shopnorm/internal/schema"
	"shopnorm/pkg/db"
	pkgerrors "shopnorm/pkg/errors"
	"shopnorm/pkg/logger"
)

// Options configures one import run.
type Options struct {
	DSN      string
	DataDir  string
	Truncate bool
}

// Load reads every generated file from DataDir and bulk-copies it into the
// database. With Truncate set, existing rows are removed first so re-running
// the import is idempotent.
func Load(ctx context.Context, opts Options, logg *logger.Logger) error {
	client, err := db.New(ctx, opts.DSN, logg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "connecting to postgres")
	}
	defer client.Close(ctx)

	if opts.Truncate {
		if err := truncateAll(ctx, client); err != nil {
			return err
		}
	}

	for _, spec := range tableSpecs() {
		records, err := schema.ReadTable(opts.DataDir, spec.table)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(records))
		for i, record := range records {
			row, err := spec.convert(record)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeBadRecord, err,
					fmt.Sprintf("%s row %d", spec.table.FileName(), i+1))
			}
			rows = append(rows, row)
		}

		copied, err := client.CopyFrom(ctx, spec.table.Name, spec.table.Columns, rows)
		if err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.Wrap(pkgerrors.CodeBadRecord, err,
					fmt.Sprintf("duplicate key in %s", spec.table.FileName()))
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("copy into %s", spec.table.Name))
		}

		logg.Info(logg.WithFields(ctx, map[string]any{
			"table": spec.table.Name,
			"rows":  copied,
		}), "table imported")
	}

	return nil
}

func truncateAll(ctx context.Context, client *db.Client) error {
	names := make([]string, 0, len(schema.AllTables()))
	for _, t := range schema.AllTables() {
		names = append(names, pgx.Identifier{t.Name}.Sanitize())
	}
	stmt := fmt.Sprintf("TRUNCATE %s CASCADE", strings.Join(names, ", "))
	if _, err := client.Exec(ctx, stmt); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "truncating tables")
	}
	return nil
}
