// Package duckdb provides the DuckDB connection dialect.
// This package is pure Go with no database driver dependencies.
package duckdb

import (
	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
)

// TypeCode is the code the dialect registry knows DuckDB by.
const TypeCode = "DUCKDB"

// MemoryDatabase selects an in-memory database.
const MemoryDatabase = ":memory:"

func init() {
	dialect.Register(DuckDB)
}

// DatabaseType describes DuckDB. It is embedded, so it has no default port.
var DatabaseType = core.DatabaseType{
	Name:                "DuckDB",
	ShortName:           TypeCode,
	AccessTypes:         []core.AccessType{core.AccessNative},
	ExtraOptionsHelpURL: "https://duckdb.org/docs/configuration/overview",
}

// Dialect builds DuckDB connection URLs.
type Dialect struct {
	dialect.Base
}

// DuckDB is the registered DuckDB dialect.
var DuckDB = &Dialect{Base: dialect.Base{
	Type:      DatabaseType,
	URLPrefix: "jdbc:duckdb:",
	Driver:    "duckdb",
	Libraries: []string{"github.com/marcboeker/go-duckdb"},
}}

// URL returns jdbc:duckdb:<path>; an empty path or ":memory:" means in-memory.
func (d *Dialect) URL(conn core.Connection) string {
	if conn.DatabaseName == MemoryDatabase {
		return d.NativeURLPrefix()
	}
	return d.NativeURLPrefix() + conn.DatabaseName
}

var _ core.Dialect = (*Dialect)(nil)
