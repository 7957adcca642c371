package snowflake

import "github.com/leapstack-labs/leapconn/pkg/core"

// TypeCode is the code the dialect registry knows Snowflake by.
const TypeCode = "SNOWFLAKEHV"

// WarehouseAttribute names the connection attribute holding the virtual warehouse.
const WarehouseAttribute = "warehouse"

const (
	nativeURLPrefix = "jdbc:snowflake://"

	// nativeDriver is the name the Go Snowflake driver registers with database/sql.
	nativeDriver  = "snowflake"
	clientLibrary = "github.com/snowflakedb/gosnowflake"
)

// DatabaseType describes Snowflake. It is never mutated.
var DatabaseType = core.DatabaseType{
	Name:      "Snowflake",
	ShortName: TypeCode,
	AccessTypes: []core.AccessType{
		core.AccessNative,
		core.AccessODBC,
		core.AccessJNDI,
	},
	DefaultPort:         443,
	ExtraOptionsHelpURL: "https://docs.snowflake.net/manuals/user-guide/jdbc-configure.html#jdbc-driver-connection-string",
}
