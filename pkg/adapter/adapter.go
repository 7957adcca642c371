// Package adapter opens real database connections for dialects whose Go
// driver is linked into the binary.
//
// This package contains the public contract that all connection adapters must implement.
// Concrete adapter implementations are in pkg/adapters/ subdirectories.
package adapter

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/leapconn/pkg/core"
)

// Rows wraps sql.Rows to provide a consistent interface.
type Rows struct {
	*sql.Rows
}

// Adapter defines the interface that all connection adapters must implement.
type Adapter interface {
	// Connect opens and pings a connection described by conn.
	Connect(ctx context.Context, conn core.Connection) error

	// Close closes the database connection and releases resources.
	Close() error

	// Ping verifies the connection is still alive.
	Ping(ctx context.Context) error

	// Exec executes a SQL statement that doesn't return rows.
	Exec(ctx context.Context, sql string) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string) (*Rows, error)

	// DriverName is the database/sql driver name used to connect.
	DriverName() string

	// DSN builds the data source name the Go driver understands.
	DSN(conn core.Connection) (string, error)

	// Dialect returns the connection dialect this adapter serves.
	Dialect() core.Dialect
}
