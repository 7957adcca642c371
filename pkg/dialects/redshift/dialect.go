// Package redshift provides the Amazon Redshift connection dialect.
// Redshift speaks the PostgreSQL wire protocol, so any PostgreSQL driver
// registered as "postgres" can serve it.
package redshift

import (
	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
)

// TypeCode is the code the dialect registry knows Redshift by.
const TypeCode = "REDSHIFT"

func init() {
	dialect.Register(Redshift)
}

// DatabaseType describes Redshift.
var DatabaseType = core.DatabaseType{
	Name:                "Redshift",
	ShortName:           TypeCode,
	AccessTypes:         []core.AccessType{core.AccessNative, core.AccessODBC, core.AccessJNDI},
	DefaultPort:         5439,
	ExtraOptionsHelpURL: "https://docs.aws.amazon.com/redshift/latest/mgmt/jdbc20-configuration-options.html",
}

// Dialect builds Redshift connection URLs.
type Dialect struct {
	dialect.Base
}

// Redshift is the registered Redshift dialect.
var Redshift = &Dialect{Base: dialect.Base{
	Type:      DatabaseType,
	URLPrefix: "jdbc:redshift://",
	Driver:    "postgres",
	Libraries: []string{"github.com/lib/pq"},
}}

// URL returns jdbc:redshift://host:port/database, or the ODBC URL.
func (d *Dialect) URL(conn core.Connection) string {
	if conn.AccessType == core.AccessODBC {
		return dialect.ODBCURL(conn)
	}
	return dialect.HostURL(d.NativeURLPrefix(), conn)
}

// ModifyColumnStatement is unsupported: Redshift can only widen VARCHAR columns.
func (d *Dialect) ModifyColumnStatement(string, core.ValueMeta, core.ColumnOptions) (string, bool) {
	return "", false
}

var _ core.Dialect = (*Dialect)(nil)
