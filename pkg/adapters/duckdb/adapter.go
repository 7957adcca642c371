// Package duckdb provides a DuckDB connection adapter for leapconn.
package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/leapstack-labs/leapconn/pkg/adapter"
	"github.com/leapstack-labs/leapconn/pkg/core"
	duckdialect "github.com/leapstack-labs/leapconn/pkg/dialects/duckdb"
	"github.com/marcboeker/go-duckdb"
)

// ExtensionsAttribute lists extensions, comma separated, to LOAD on every
// new connection (e.g. "json,parquet").
const ExtensionsAttribute = "extensions"

// Adapter implements the adapter.Adapter interface for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new DuckDB adapter instance.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{BaseSQLAdapter: adapter.NewBase(logger)}
}

// DriverName returns "duckdb".
func (a *Adapter) DriverName() string { return "duckdb" }

// Dialect returns the DuckDB dialect.
func (a *Adapter) Dialect() core.Dialect { return duckdialect.DuckDB }

// Connect establishes a connection to DuckDB.
// Use ":memory:" (or an empty name) for an in-memory database.
func (a *Adapter) Connect(ctx context.Context, conn core.Connection) error {
	dsn, err := a.DSN(conn)
	if err != nil {
		return err
	}

	extensions := splitList(conn.Attributes[ExtensionsAttribute])
	a.Logger.Debug("opening duckdb database",
		slog.String("dsn", dsn),
		slog.Any("extensions", extensions))

	connector, err := duckdb.NewConnector(dsn, loadExtensions(extensions))
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}
	return a.OpenConnector(ctx, a.DriverName(), connector)
}

// DSN returns the database path with ExtraOptions as DuckDB configuration
// parameters, e.g. data.duckdb?threads=4.
func (a *Adapter) DSN(conn core.Connection) (string, error) {
	path := conn.DatabaseName
	if path == duckdialect.MemoryDatabase {
		path = ""
	}
	if len(conn.ExtraOptions) == 0 {
		return path, nil
	}
	q := url.Values{}
	for k, v := range conn.ExtraOptions {
		q.Set(k, v)
	}
	return path + "?" + q.Encode(), nil
}

// loadExtensions returns the connector init hook. It runs for every pooled
// connection, long after Connect returned, so it must not use Connect's context.
func loadExtensions(extensions []string) func(driver.ExecerContext) error {
	return func(execer driver.ExecerContext) error {
		for _, ext := range extensions {
			if _, err := execer.ExecContext(context.Background(), "LOAD "+ext, nil); err != nil {
				return fmt.Errorf("failed to load extension %s: %w", ext, err)
			}
		}
		return nil
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var _ adapter.Adapter = (*Adapter)(nil)
