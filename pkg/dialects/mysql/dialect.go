// Package mysql provides the MySQL connection dialect.
// This package is pure Go with no database driver dependencies.
package mysql

import (
	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
)

// TypeCode is the code the dialect registry knows MySQL by.
const TypeCode = "MYSQL"

func init() {
	dialect.Register(MySQL)
}

// DatabaseType describes MySQL.
var DatabaseType = core.DatabaseType{
	Name:                "MySQL",
	ShortName:           TypeCode,
	AccessTypes:         []core.AccessType{core.AccessNative, core.AccessODBC, core.AccessJNDI},
	DefaultPort:         3306,
	ExtraOptionsHelpURL: "https://dev.mysql.com/doc/connector-j/en/connector-j-reference-configuration-properties.html",
}

// Dialect builds MySQL connection URLs.
type Dialect struct {
	dialect.Base
}

// MySQL is the registered MySQL dialect.
var MySQL = &Dialect{Base: dialect.Base{
	Type:      DatabaseType,
	URLPrefix: "jdbc:mysql://",
	Driver:    "mysql",
	Libraries: []string{"github.com/go-sql-driver/mysql"},
	Identity:  "BIGINT AUTO_INCREMENT",
}}

// URL returns jdbc:mysql://host:port/database, or the ODBC URL.
func (d *Dialect) URL(conn core.Connection) string {
	if conn.AccessType == core.AccessODBC {
		return dialect.ODBCURL(conn)
	}
	return dialect.HostURL(d.NativeURLPrefix(), conn)
}

// StartQuote returns a backtick.
func (d *Dialect) StartQuote() string { return "`" }

// EndQuote returns a backtick.
func (d *Dialect) EndQuote() string { return "`" }

var _ core.Dialect = (*Dialect)(nil)
