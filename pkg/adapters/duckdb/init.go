// Package duckdb provides a DuckDB connection adapter for leapconn.
//
// This file registers the DuckDB adapter with the adapter registry.
// Import this package with a blank identifier to register the adapter:
//
//	import _ "github.com/leapstack-labs/leapconn/pkg/adapters/duckdb"
package duckdb

import (
	"log/slog"

	"github.com/leapstack-labs/leapconn/pkg/adapter"
	duckdialect "github.com/leapstack-labs/leapconn/pkg/dialects/duckdb"
)

func init() {
	adapter.Register(duckdialect.TypeCode, func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
