// Package sqlite provides a SQLite connection adapter for leapconn,
// backed by the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/leapstack-labs/leapconn/pkg/adapter"
	"github.com/leapstack-labs/leapconn/pkg/core"
	litedialect "github.com/leapstack-labs/leapconn/pkg/dialects/sqlite"

	_ "modernc.org/sqlite" // sqlite driver
)

const memoryPath = ":memory:"

// Adapter implements the adapter.Adapter interface for SQLite.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQLite adapter instance.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{BaseSQLAdapter: adapter.NewBase(logger)}
}

// DriverName returns "sqlite", the name modernc.org/sqlite registers.
func (a *Adapter) DriverName() string { return "sqlite" }

// Dialect returns the SQLite dialect.
func (a *Adapter) Dialect() core.Dialect { return litedialect.SQLite }

// Connect opens the database file, or an in-memory database when
// DatabaseName is empty or ":memory:".
func (a *Adapter) Connect(ctx context.Context, conn core.Connection) error {
	dsn, err := a.DSN(conn)
	if err != nil {
		return err
	}

	a.Logger.Debug("opening sqlite database", slog.String("dsn", dsn))

	if err := a.Open(ctx, a.DriverName(), dsn); err != nil {
		return err
	}
	if isMemory(conn.DatabaseName) {
		// Every pooled connection would get its own private database.
		a.DB.SetMaxOpenConns(1)
	}
	return nil
}

// DSN returns the database path followed by ExtraOptions as query
// parameters, e.g. app.db?_pragma=foreign_keys(1).
func (a *Adapter) DSN(conn core.Connection) (string, error) {
	path := conn.DatabaseName
	if isMemory(path) {
		path = memoryPath
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

func isMemory(path string) bool {
	return path == "" || path == memoryPath
}

var _ adapter.Adapter = (*Adapter)(nil)
