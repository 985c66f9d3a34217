package cli

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	pkgerrors "shopnorm/pkg/errors"
	"shopnorm/pkg/migrate"
)

var migrateFlags struct {
	dir     string
	name    string
	version string
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|version|create|validate]",
	Short:     "Manage the normalized schema with goose",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down", "status", "version", "create", "validate"},
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&migrateFlags.dir, "dir", migrate.DefaultDir, "goose migrations directory")
	migrateCmd.Flags().StringVar(&migrateFlags.name, "name", "", "migration name (for create)")
	migrateCmd.Flags().StringVar(&migrateFlags.version, "version", "", "target version (YYYYMMDDHHMMSS) for version")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := args[0]

	// create and validate never touch a database.
	switch command {
	case "create":
		if migrateFlags.name == "" {
			return pkgerrors.New(pkgerrors.CodeInvalidInput, "missing --name for create")
		}
		path, err := migrate.CreateSQLMigration(migrateFlags.dir, migrateFlags.name)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInvalidInput, err, "creating migration")
		}
		fmt.Println("created migration:", path)
		return nil

	case "validate":
		if err := migrate.ValidateDir(migrateFlags.dir); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInvalidInput, err, "validating migrations")
		}
		fmt.Println("migration validation passed")
		return nil
	}

	cfg, logg, err := bootstrap("migrate")
	if err != nil {
		return err
	}
	if err := cfg.DB.EnsureDSN(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInvalidInput, err, "resolving database DSN")
	}

	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "opening database")
	}
	defer db.Close()

	ctx := cmd.Context()

	if command == "version" {
		if migrateFlags.version == "" {
			return pkgerrors.New(pkgerrors.CodeInvalidInput, "missing --version for version")
		}
		if err := migrate.MigrateToVersion(ctx, db, migrateFlags.dir, migrateFlags.version); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "migrating to version")
		}
		logg.Info(ctx, "migrated to requested version")
		return nil
	}

	if err := migrate.Run(ctx, db, migrateFlags.dir, command); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("goose %s", command))
	}
	logg.Info(logg.WithField(ctx, "cmd", command), "migration command complete")
	return nil
}
