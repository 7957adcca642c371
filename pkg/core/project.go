package core

// TargetConfig holds the connection settings of one configured target.
type TargetConfig struct {
	Type   string `koanf:"type"`   // dialect type code, e.g. snowflakehv, postgresql
	Access string `koanf:"access"` // native, odbc, jndi

	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"` // database name or file path
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Snowflake-specific
	Account   string `koanf:"account"`
	Warehouse string `koanf:"warehouse"`
	Role      string `koanf:"role"`

	// Attributes holds product-specific settings copied into Connection.Attributes.
	Attributes map[string]any `koanf:"attributes"`

	// Options are extra URL options appended by the URL builder.
	Options map[string]string `koanf:"options"`
}
