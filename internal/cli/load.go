package cli

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"shopnorm/internal/loader"
	pkgerrors "shopnorm/pkg/errors"
	"shopnorm/pkg/migrate"
)

var loadFlags struct {
	dataDir        string
	dsn            string
	migrationsDir  string
	keepExisting   bool
	skipMigrations bool
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Create the schema in PostgreSQL and import the generated tables",
	RunE:  runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVarP(&loadFlags.dataDir, "data-dir", "d", "", "directory holding the generated tables (or SHOPNORM_OUTPUT_DIR)")
	loadCmd.Flags().StringVar(&loadFlags.dsn, "dsn", "", "Postgres DSN (or SHOPNORM_DB_DSN)")
	loadCmd.Flags().StringVar(&loadFlags.migrationsDir, "migrations-dir", migrate.DefaultDir, "goose migrations directory")
	loadCmd.Flags().BoolVar(&loadFlags.keepExisting, "keep-existing", false, "do not truncate tables before importing")
	loadCmd.Flags().BoolVar(&loadFlags.skipMigrations, "skip-migrations", false, "assume the schema exists; skip goose up")
}

func runLoad(cmd *cobra.Command, _ []string) error {
	cfg, logg, err := bootstrap("load")
	if err != nil {
		return err
	}

	if loadFlags.dsn != "" {
		cfg.DB.DSN = loadFlags.dsn
	}
	if err := cfg.DB.EnsureDSN(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInvalidInput, err, "resolving database DSN")
	}

	dataDir := cfg.Generate.OutputDir
	if cmd.Flags().Changed("data-dir") {
		dataDir = loadFlags.dataDir
	}

	ctx := cmd.Context()

	if !loadFlags.skipMigrations {
		db, err := sql.Open("pgx", cfg.DB.DSN)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "opening database")
		}
		if err := migrate.Run(ctx, db, loadFlags.migrationsDir, "up"); err != nil {
			_ = db.Close()
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "applying migrations")
		}
		if err := db.Close(); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "closing migration connection")
		}
		logg.Info(ctx, "schema migrations applied")
	}

	opts := loader.Options{
		DSN:      cfg.DB.DSN,
		DataDir:  dataDir,
		Truncate: !loadFlags.keepExisting,
	}
	if err := loader.Load(ctx, opts, logg); err != nil {
		logg.Error(logg.WithField(ctx, "detail", pkgerrors.Dump(err)), "import failed", err)
		return err
	}

	logg.Info(logg.WithField(ctx, "data_dir", dataDir), fmt.Sprintf("import complete from %s", dataDir))
	return nil
}
