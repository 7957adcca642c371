package config

import (
	"strings"

	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
)

// Default configuration values.
const (
	DefaultLogLevel = "warn"
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultAccess   = "native"
)

// typeAliases maps the short names people type to registered type codes.
var typeAliases = map[string]string{
	"snowflake": "SNOWFLAKEHV",
	"postgres":  "POSTGRESQL",
	"pg":        "POSTGRESQL",
	"mariadb":   "MYSQL",
	"sqlite3":   "SQLITE",
}

// ResolveType maps a configured type name to a dialect type code.
func ResolveType(name string) string {
	if code, ok := typeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}
	return dialect.NormalizeType(name)
}

// ApplyTargetDefaults applies default values to a TargetConfig based on the target type.
func ApplyTargetDefaults(t *core.TargetConfig) {
	if t == nil {
		return
	}

	t.Type = ResolveType(t.Type)
	if t.Access == "" {
		t.Access = DefaultAccess
	}

	// Apply the dialect's default port for networked products.
	if t.Port == 0 {
		if d, ok := dialect.Get(t.Type); ok {
			t.Port = d.DatabaseType().DefaultPort
		}
	}
}
