package dialect

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/driverreg"
)

// ProbeHost is the host name used to build the URL a usability probe offers
// to registered drivers.
const ProbeHost = "server"

// Base provides the generic parts of core.Dialect.
// Embed it in concrete dialects and override what differs.
type Base struct {
	Type       core.DatabaseType
	URLPrefix  string
	Driver     string
	Libraries  []string
	Attributes []string

	// Identity is the column type of auto-incremented keys; empty means the ANSI identity column.
	Identity string
	Logger   *slog.Logger
}

// DatabaseType returns the static product description.
func (b *Base) DatabaseType() core.DatabaseType { return b.Type }

// NativeURLPrefix returns the native URL scheme prefix.
func (b *Base) NativeURLPrefix() string { return b.URLPrefix }

// NativeDriver returns the native driver identifier.
func (b *Base) NativeDriver() string { return b.Driver }

// UsedLibraries returns the client libraries of the native driver.
func (b *Base) UsedLibraries() []string { return slices.Clone(b.Libraries) }

// RequiredAttributes returns the attribute keys the dialect's URL relies on.
func (b *Base) RequiredAttributes() []string { return slices.Clone(b.Attributes) }

// StartQuote returns the opening identifier quote.
func (b *Base) StartQuote() string { return `"` }

// EndQuote returns the closing identifier quote.
func (b *Base) EndQuote() string { return `"` }

// ExtraOptionIndicator starts the option part of a URL.
func (b *Base) ExtraOptionIndicator() string { return "?" }

// ExtraOptionSeparator separates URL options.
func (b *Base) ExtraOptionSeparator() string { return "&" }

// ExtraOptionValueSeparator separates an option name from its value.
func (b *Base) ExtraOptionValueSeparator() string { return "=" }

// ProbeURL is the URL offered to registered drivers by IsUsable.
func (b *Base) ProbeURL() string { return b.URLPrefix + ProbeHost }

// IsUsable is true when the native driver can be loaded, or when any
// registered driver accepts ProbeURL. Driver failures count as "no".
func (b *Base) IsUsable(env core.Environment) bool {
	if env.Loadable(b.Driver) {
		return true
	}
	logger := env.Logger
	if logger == nil {
		logger = b.logger()
	}
	return driverreg.AnyAccepts(env.RegisteredDrivers(), b.ProbeURL(), logger)
}

// Initialize only verifies that the driver will be usable.
func (b *Base) Initialize(env core.Environment, _ string) bool {
	return b.IsUsable(env)
}

// FieldDefinition renders a generic ANSI column type for v.
func (b *Base) FieldDefinition(v core.ValueMeta, opts core.ColumnOptions) (string, bool) {
	typ, ok := b.columnType(v, opts)
	if !ok {
		return "", false
	}
	var sb strings.Builder
	if opts.AddFieldName {
		sb.WriteString(v.Name)
		sb.WriteString(" ")
	}
	sb.WriteString(typ)
	if opts.AddCR {
		sb.WriteString("\n")
	}
	return sb.String(), true
}

// AddColumnStatement renders ALTER TABLE ... ADD.
func (b *Base) AddColumnStatement(table string, v core.ValueMeta, opts core.ColumnOptions) (string, bool) {
	return alterStatement(b, table, "ADD", v, opts)
}

// ModifyColumnStatement renders ALTER TABLE ... MODIFY.
func (b *Base) ModifyColumnStatement(table string, v core.ValueMeta, opts core.ColumnOptions) (string, bool) {
	return alterStatement(b, table, "MODIFY", v, opts)
}

func alterStatement(b *Base, table, verb string, v core.ValueMeta, opts core.ColumnOptions) (string, bool) {
	opts.AddFieldName = true
	opts.AddCR = false
	def, ok := b.FieldDefinition(v, opts)
	if !ok {
		return "", false
	}
	stmt := fmt.Sprintf("ALTER TABLE %s %s %s", table, verb, def)
	if opts.WithSemicolon {
		stmt += ";"
	}
	return stmt, true
}

func (b *Base) columnType(v core.ValueMeta, opts core.ColumnOptions) (string, bool) {
	isKey := v.Name != "" && (v.Name == opts.TechnicalKey || v.Name == opts.PrimaryKey)
	switch v.Kind {
	case core.KindString:
		if v.Length > 0 {
			return fmt.Sprintf("VARCHAR(%d)", v.Length), true
		}
		return "VARCHAR", true
	case core.KindInteger:
		if isKey {
			if opts.UseAutoinc {
				identity := b.Identity
				if identity == "" {
					identity = "BIGINT GENERATED BY DEFAULT AS IDENTITY"
				}
				return identity + " NOT NULL PRIMARY KEY", true
			}
			return "BIGINT NOT NULL PRIMARY KEY", true
		}
		return "BIGINT", true
	case core.KindNumber, core.KindBigNumber:
		if v.Length > 0 {
			return fmt.Sprintf("NUMERIC(%d, %d)", v.Length, v.Precision), true
		}
		if v.Kind == core.KindBigNumber {
			return "NUMERIC", true
		}
		return "DOUBLE PRECISION", true
	case core.KindBoolean:
		return "BOOLEAN", true
	case core.KindDate:
		return "DATE", true
	case core.KindTimestamp:
		return "TIMESTAMP", true
	case core.KindBinary:
		return "BLOB", true
	}
	return "", false
}

func (b *Base) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}
