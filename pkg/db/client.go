// Package db wraps the shared PostgreSQL connection used by the import and
// migration commands.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"shopnorm/pkg/logger"
)

// Client wraps a single pgx connection. The importer is a batch job, so a
// pool is unnecessary.
type Client struct {
	conn *pgx.Conn
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New opens a connection and verifies it is reachable.
func New(ctx context.Context, dsn string, logg *logger.Logger) (*Client, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening db connection: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("pinging db: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "database connection established")
	}

	return &Client{conn: conn}, nil
}

// Conn returns the underlying pgx connection.
func (c *Client) Conn() *pgx.Conn {
	return c.conn
}

// Ping verifies the datasource is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

// Close shuts down the connection.
func (c *Client) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}

// Exec runs a statement with context propagation.
func (c *Client) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	return c.conn.Exec(ctx, query, args...)
}

// CopyFrom bulk-copies rows into the named table.
func (c *Client) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	return c.conn.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
}
