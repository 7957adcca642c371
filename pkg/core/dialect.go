package core

// ValueKind classifies a column value for DDL generation.
type ValueKind int

// Value kinds understood by the generic DDL builder.
const (
	KindString ValueKind = iota
	KindInteger
	KindNumber
	KindBigNumber
	KindBoolean
	KindDate
	KindTimestamp
	KindBinary
)

// ValueMeta describes a column for DDL generation.
type ValueMeta struct {
	Name      string
	Kind      ValueKind
	Length    int
	Precision int
}

// ColumnOptions carries the knobs shared by the DDL operations.
type ColumnOptions struct {
	TechnicalKey  string
	PrimaryKey    string
	UseAutoinc    bool
	AddFieldName  bool
	AddCR         bool
	WithSemicolon bool
}

// Dialect is a per-product strategy for building connection strings and
// reporting capabilities.
//
// DDL operations return ok=false when the dialect does not support them.
// Callers must treat that as "unsupported", not as an error.
type Dialect interface {
	// DatabaseType returns the static product description.
	DatabaseType() DatabaseType

	// URL builds the connection URL. It never fails.
	URL(conn Connection) string

	// NativeURLPrefix is the scheme prefix of native URLs (e.g. "jdbc:snowflake://").
	NativeURLPrefix() string
	// NativeDriver is the identifier of the native client driver.
	NativeDriver() string
	// UsedLibraries lists the client libraries the native driver needs.
	UsedLibraries() []string

	StartQuote() string
	EndQuote() string

	ExtraOptionIndicator() string
	ExtraOptionSeparator() string
	ExtraOptionValueSeparator() string

	// RequiredAttributes lists the attribute keys URL expects to be present.
	RequiredAttributes() []string

	// IsUsable reports whether a driver for this dialect can be used in env.
	IsUsable(env Environment) bool
	// Initialize prepares the named driver and reports whether it is usable.
	Initialize(env Environment, driverName string) bool

	FieldDefinition(v ValueMeta, opts ColumnOptions) (string, bool)
	AddColumnStatement(table string, v ValueMeta, opts ColumnOptions) (string, bool)
	ModifyColumnStatement(table string, v ValueMeta, opts ColumnOptions) (string, bool)
}
