package core

import (
	"fmt"
	"strings"
)

// AccessType is the mode used to reach a database.
type AccessType int

// Access types, in the order products usually list them.
const (
	// AccessNative connects directly through the product's own client driver.
	AccessNative AccessType = iota
	// AccessODBC connects through an ODBC bridge.
	AccessODBC
	// AccessJNDI uses a data source registered in a naming directory.
	AccessJNDI
)

var accessTypeNames = map[AccessType]string{
	AccessNative: "NATIVE",
	AccessODBC:   "ODBC",
	AccessJNDI:   "JNDI",
}

// String returns the canonical upper-case name of the access type.
func (a AccessType) String() string {
	if name, ok := accessTypeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AccessType(%d)", int(a))
}

// ParseAccessType parses an access type name. Matching is case-insensitive
// and an empty string means native.
func ParseAccessType(s string) (AccessType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NATIVE":
		return AccessNative, nil
	case "ODBC":
		return AccessODBC, nil
	case "JNDI":
		return AccessJNDI, nil
	}
	return AccessNative, fmt.Errorf("unknown access type %q (expected native, odbc or jndi)", s)
}

// Connection describes how to reach one database.
// Dialects only read it; it is built and owned by the caller.
type Connection struct {
	AccessType   AccessType
	Hostname     string
	Port         int
	DatabaseName string
	Username     string
	Password     string

	// Attributes holds product-specific settings (e.g. a Snowflake warehouse).
	Attributes map[string]string

	// ExtraOptions are appended to the URL by the caller-side URL builder.
	ExtraOptions map[string]string
}

// Attribute returns the named attribute and whether it was set.
func (c Connection) Attribute(key string) (string, bool) {
	v, ok := c.Attributes[key]
	return v, ok
}
