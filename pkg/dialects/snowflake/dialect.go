// Package snowflake provides the Snowflake connection dialect.
// This package is pure Go with no database driver dependencies: usability is
// decided by probing whatever drivers the host process has loaded.
package snowflake

import (
	"log/slog"
	"strconv"

	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
)

func init() {
	dialect.Register(Snowflake)
}

// Dialect builds Snowflake connection URLs. It does not generate DDL and does
// not quote identifiers.
type Dialect struct {
	dialect.Base
}

// New creates a Snowflake dialect. If logger is nil, probe failures are discarded.
func New(logger *slog.Logger) *Dialect {
	return &Dialect{Base: dialect.Base{
		Type:       DatabaseType,
		URLPrefix:  nativeURLPrefix,
		Driver:     nativeDriver,
		Libraries:  []string{clientLibrary},
		Attributes: []string{WarehouseAttribute},
		Logger:     logger,
	}}
}

// Snowflake is the registered Snowflake dialect.
var Snowflake = New(nil)

// URL returns odbc:<database> for ODBC access and otherwise
// jdbc:snowflake://<host>:<port>/?db=<database>&warehouse=<warehouse>.
// A missing warehouse attribute is rendered as the literal text "null";
// run dialect.ValidateConnection first to catch it.
func (d *Dialect) URL(conn core.Connection) string {
	if conn.AccessType == core.AccessODBC {
		return dialect.ODBCURL(conn)
	}
	return d.NativeURLPrefix() + conn.Hostname + ":" + strconv.Itoa(conn.Port) +
		"/?db=" + conn.DatabaseName +
		"&warehouse=" + attributeOrNull(conn, WarehouseAttribute)
}

func attributeOrNull(conn core.Connection, key string) string {
	if v, ok := conn.Attribute(key); ok {
		return v
	}
	return "null"
}

// ExtraOptionSeparator returns "&".
func (d *Dialect) ExtraOptionSeparator() string { return "&" }

// StartQuote returns "": identifiers are not quoted.
func (d *Dialect) StartQuote() string { return "" }

// EndQuote returns "": identifiers are not quoted.
func (d *Dialect) EndQuote() string { return "" }

// FieldDefinition is unsupported.
func (d *Dialect) FieldDefinition(core.ValueMeta, core.ColumnOptions) (string, bool) {
	return "", false
}

// AddColumnStatement is unsupported.
func (d *Dialect) AddColumnStatement(string, core.ValueMeta, core.ColumnOptions) (string, bool) {
	return "", false
}

// ModifyColumnStatement is unsupported.
func (d *Dialect) ModifyColumnStatement(string, core.ValueMeta, core.ColumnOptions) (string, bool) {
	return "", false
}

// Ensure Dialect implements core.Dialect interface
var _ core.Dialect = (*Dialect)(nil)
