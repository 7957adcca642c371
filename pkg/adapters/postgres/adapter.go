// Package postgres provides a PostgreSQL connection adapter for leapconn.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/leapstack-labs/leapconn/pkg/adapter"
	"github.com/leapstack-labs/leapconn/pkg/core"
	pgdialect "github.com/leapstack-labs/leapconn/pkg/dialects/postgres"
)

// Adapter implements the adapter.Adapter interface for PostgreSQL.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new PostgreSQL adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{BaseSQLAdapter: adapter.NewBase(logger)}
}

// DriverName returns "pgx", the name pgx's stdlib package registers.
func (a *Adapter) DriverName() string { return "pgx" }

// Dialect returns the PostgreSQL dialect.
func (a *Adapter) Dialect() core.Dialect { return pgdialect.Postgres }

// Connect parses the DSN with pgx and opens it through pgx's stdlib bridge.
func (a *Adapter) Connect(ctx context.Context, conn core.Connection) error {
	dsn, err := a.DSN(conn)
	if err != nil {
		return err
	}

	a.Logger.Debug("connecting to postgres",
		slog.String("host", conn.Hostname),
		slog.String("database", conn.DatabaseName))

	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("invalid postgres connection settings: %w", err)
	}
	return a.OpenConnector(ctx, a.DriverName(), stdlib.GetConnector(*cfg))
}

// DSN constructs a key=value PostgreSQL connection string.
func (a *Adapter) DSN(conn core.Connection) (string, error) {
	return buildPostgresDSN(conn), nil
}

func buildPostgresDSN(conn core.Connection) string {
	// Build key=value format: host=localhost port=5432 user=postgres ...
	host := conn.Hostname
	if host == "" {
		host = "localhost"
	}

	port := conn.Port
	if port == 0 {
		port = pgdialect.DatabaseType.DefaultPort
	}

	sslmode := "disable"
	if mode, ok := conn.ExtraOptions["sslmode"]; ok {
		sslmode = mode
	}

	dsn := fmt.Sprintf("host=%s port=%d dbname=%s sslmode=%s",
		host, port, conn.DatabaseName, sslmode)

	if conn.Username != "" {
		dsn += fmt.Sprintf(" user=%s", conn.Username)
	}
	if conn.Password != "" {
		dsn += fmt.Sprintf(" password=%s", conn.Password)
	}

	return dsn
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
