package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapconn/pkg/core"
)

// ErrInvalidConnection is wrapped by every ValidateConnection failure.
var ErrInvalidConnection = errors.New("invalid connection")

// ODBCPrefix starts every ODBC URL.
const ODBCPrefix = "odbc:"

// ODBCURL returns the ODBC URL for conn: the prefix followed by the database (DSN) name.
func ODBCURL(conn core.Connection) string {
	return ODBCPrefix + conn.DatabaseName
}

// HostURL returns prefix + host:port/database, the layout shared by most network databases.
func HostURL(prefix string, conn core.Connection) string {
	return prefix + conn.Hostname + ":" + strconv.Itoa(conn.Port) + "/" + conn.DatabaseName
}

// BuildURL returns d.URL(conn) with conn.ExtraOptions appended in key order,
// using the dialect's option indicator and separators. ODBC URLs carry no options.
func BuildURL(d core.Dialect, conn core.Connection) string {
	url := d.URL(conn)
	if len(conn.ExtraOptions) == 0 || conn.AccessType == core.AccessODBC {
		return url
	}

	keys := make([]string, 0, len(conn.ExtraOptions))
	for k := range conn.ExtraOptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	indicator := d.ExtraOptionIndicator()
	needIndicator := !strings.Contains(url, indicator)
	needSeparator := !needIndicator && !strings.HasSuffix(url, indicator)

	var sb strings.Builder
	sb.WriteString(url)
	for _, k := range keys {
		switch {
		case needIndicator:
			sb.WriteString(indicator)
			needIndicator = false
		case needSeparator:
			sb.WriteString(d.ExtraOptionSeparator())
		}
		needSeparator = true
		sb.WriteString(k)
		sb.WriteString(d.ExtraOptionValueSeparator())
		sb.WriteString(conn.ExtraOptions[k])
	}
	return sb.String()
}

// ValidateConnection checks conn against what d needs to build a sensible URL.
// Dialects themselves never validate; callers run this first.
func ValidateConnection(d core.Dialect, conn core.Connection) error {
	dt := d.DatabaseType()
	var errs []error

	if !dt.SupportsAccessType(conn.AccessType) {
		errs = append(errs, fmt.Errorf("%w: %s does not support %s access", ErrInvalidConnection, dt.Name, conn.AccessType))
	}
	if conn.DatabaseName == "" {
		errs = append(errs, fmt.Errorf("%w: database name is required", ErrInvalidConnection))
	}

	if conn.AccessType != core.AccessODBC {
		if dt.DefaultPort > 0 && conn.Hostname == "" {
			errs = append(errs, fmt.Errorf("%w: hostname is required", ErrInvalidConnection))
		}
		for _, key := range d.RequiredAttributes() {
			if v, ok := conn.Attribute(key); !ok || v == "" {
				errs = append(errs, fmt.Errorf("%w: attribute %q is required by %s", ErrInvalidConnection, key, dt.Name))
			}
		}
	}

	return errors.Join(errs...)
}
