// Package sqlite provides the SQLite connection dialect.
// This package is pure Go with no database driver dependencies.
package sqlite

import (
	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
)

// TypeCode is the code the dialect registry knows SQLite by.
const TypeCode = "SQLITE"

func init() {
	dialect.Register(SQLite)
}

// DatabaseType describes SQLite. It is file based, so it has no default port.
var DatabaseType = core.DatabaseType{
	Name:                "SQLite",
	ShortName:           TypeCode,
	AccessTypes:         []core.AccessType{core.AccessNative},
	ExtraOptionsHelpURL: "https://www.sqlite.org/uri.html",
}

// Dialect builds SQLite connection URLs.
type Dialect struct {
	dialect.Base
}

// SQLite is the registered SQLite dialect.
var SQLite = &Dialect{Base: dialect.Base{
	Type:      DatabaseType,
	URLPrefix: "jdbc:sqlite:",
	Driver:    "sqlite",
	Libraries: []string{"modernc.org/sqlite"},
}}

// URL returns jdbc:sqlite:<database path>.
func (d *Dialect) URL(conn core.Connection) string {
	return d.NativeURLPrefix() + conn.DatabaseName
}

// ModifyColumnStatement is unsupported: SQLite cannot change a column's type in place.
func (d *Dialect) ModifyColumnStatement(string, core.ValueMeta, core.ColumnOptions) (string, bool) {
	return "", false
}

var _ core.Dialect = (*Dialect)(nil)
