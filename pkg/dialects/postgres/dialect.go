// Package postgres provides the PostgreSQL connection dialect.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"fmt"

	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
)

// TypeCode is the code the dialect registry knows PostgreSQL by.
const TypeCode = "POSTGRESQL"

func init() {
	dialect.Register(Postgres)
}

// DatabaseType describes PostgreSQL.
var DatabaseType = core.DatabaseType{
	Name:                "PostgreSQL",
	ShortName:           TypeCode,
	AccessTypes:         []core.AccessType{core.AccessNative, core.AccessODBC, core.AccessJNDI},
	DefaultPort:         5432,
	ExtraOptionsHelpURL: "https://jdbc.postgresql.org/documentation/use/#connection-parameters",
}

// Dialect builds PostgreSQL connection URLs.
type Dialect struct {
	dialect.Base
}

// Postgres is the registered PostgreSQL dialect.
var Postgres = &Dialect{Base: dialect.Base{
	Type:      DatabaseType,
	URLPrefix: "jdbc:postgresql://",
	Driver:    "pgx",
	Libraries: []string{"github.com/jackc/pgx/v5"},
}}

// URL returns jdbc:postgresql://host:port/database, or the ODBC URL.
func (d *Dialect) URL(conn core.Connection) string {
	if conn.AccessType == core.AccessODBC {
		return dialect.ODBCURL(conn)
	}
	return dialect.HostURL(d.NativeURLPrefix(), conn)
}

// ModifyColumnStatement uses ALTER COLUMN ... TYPE, PostgreSQL has no MODIFY.
func (d *Dialect) ModifyColumnStatement(table string, v core.ValueMeta, opts core.ColumnOptions) (string, bool) {
	opts.AddFieldName = false
	opts.AddCR = false
	// Key columns keep their constraints; only the type changes.
	opts.PrimaryKey, opts.TechnicalKey = "", ""
	typ, ok := d.FieldDefinition(v, opts)
	if !ok {
		return "", false
	}
	stmt := fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s", table, v.Name, typ)
	if opts.WithSemicolon {
		stmt += ";"
	}
	return stmt, true
}

var _ core.Dialect = (*Dialect)(nil)
