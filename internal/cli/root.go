// Package cli wires the shopnorm commands. Every command loads .env, then
// env config, then applies its own flag overrides.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"shopnorm/pkg/config"
	pkgerrors "shopnorm/pkg/errors"
	"shopnorm/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "shopnorm [command]",
	Short: "Normalize flat e-commerce exports into a relational dataset",
	Long: `Reads flat CSV exports (customers, products, orders, order items, reviews),
derives lookup tables, backfills surrogate foreign keys, synthesizes address,
shipping and stock-movement records, and writes the result as twelve CSV files
that form one consistent foreign-key graph. The load command imports those
files into PostgreSQL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shopnorm: %v\n", err)
		os.Exit(pkgerrors.ExitStatus(err))
	}
}

// bootstrap loads env config and builds the service logger.
func bootstrap(service string) (*config.Config, *logger.Logger, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInvalidInput, err, "loading config")
	}

	logg := logger.New(logger.Options{
		ServiceName: service,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	return cfg, logg, nil
}
