// Package driverreg exposes the database/sql driver registry as a
// core.DriverRegistry and provides the usability probe shared by dialects.
package driverreg

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/leapstack-labs/leapconn/pkg/core"
)

// URLAcceptor may be implemented by a database/sql driver that decides for
// itself whether it handles a URL. It takes precedence over scheme matching.
type URLAcceptor interface {
	AcceptsURL(url string) (bool, error)
}

// schemeAliases lists the extra URL schemes a registered driver name answers to.
var schemeAliases = map[string][]string{
	"pgx":      {"postgres", "postgresql"},
	"postgres": {"postgresql", "redshift"},
	"sqlite":   {"sqlite3"},
	"mysql":    {"mariadb"},
}

// Scheme extracts the lower-cased scheme of a connection URL, skipping a
// leading "jdbc:" when present. It returns "" when there is none.
func Scheme(url string) string {
	s := url
	if len(s) >= 5 && strings.EqualFold(s[:5], "jdbc:") {
		s = s[5:]
	}
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return ""
	}
	return strings.ToLower(s[:i])
}

// SQLRegistry is a snapshot of the drivers registered with database/sql.
type SQLRegistry struct {
	names []string
}

// NewSQLRegistry snapshots sql.Drivers().
func NewSQLRegistry() *SQLRegistry {
	return &SQLRegistry{names: sql.Drivers()}
}

// Names returns the registered driver names (sorted).
func (r *SQLRegistry) Names() []string {
	return slices.Clone(r.names)
}

// Drivers implements core.DriverRegistry.
func (r *SQLRegistry) Drivers() []core.Driver {
	drivers := make([]core.Driver, 0, len(r.names))
	for _, name := range r.names {
		drivers = append(drivers, &sqlDriver{name: name})
	}
	return drivers
}

type sqlDriver struct {
	name string
}

func (d *sqlDriver) Name() string { return d.name }

// AcceptsURL defers to the driver when it implements URLAcceptor and
// otherwise matches the URL scheme against the driver name and its aliases.
func (d *sqlDriver) AcceptsURL(url string) (bool, error) {
	drv, err := lookup(d.name)
	if err != nil {
		return false, err
	}
	if a, ok := drv.(URLAcceptor); ok {
		return a.AcceptsURL(url)
	}

	scheme := Scheme(url)
	if scheme == "" {
		return false, nil
	}
	return scheme == d.name || slices.Contains(schemeAliases[d.name], scheme), nil
}

// lookup resolves a registered driver by name. sql.Open does not connect.
func lookup(name string) (driver.Driver, error) {
	db, err := sql.Open(name, "")
	if err != nil {
		return nil, fmt.Errorf("failed to look up driver %q: %w", name, err)
	}
	defer func() { _ = db.Close() }()
	return db.Driver(), nil
}

// Snapshot is an explicit, static driver registry.
type Snapshot []core.Driver

// Drivers implements core.DriverRegistry.
func (s Snapshot) Drivers() []core.Driver {
	return s
}

// DriverFunc adapts a function to core.Driver.
type DriverFunc struct {
	DriverName string
	Accept     func(url string) (bool, error)
}

// Name implements core.Driver.
func (f DriverFunc) Name() string { return f.DriverName }

// AcceptsURL implements core.Driver.
func (f DriverFunc) AcceptsURL(url string) (bool, error) {
	if f.Accept == nil {
		return false, nil
	}
	return f.Accept(url)
}

// SQLLoader reports whether a database/sql driver with the given name is registered.
func SQLLoader(name string) bool {
	return slices.Contains(sql.Drivers(), name)
}

// DefaultEnvironment probes the live database/sql registry. Swallowed driver
// failures go to logger at debug level; a nil logger leaves that to the dialect.
func DefaultEnvironment(logger *slog.Logger) core.Environment {
	return core.Environment{
		Drivers: NewSQLRegistry(),
		CanLoad: SQLLoader,
		Logger:  logger,
	}
}

// RegisteredNames returns the names of all drivers in reg, sorted.
func RegisteredNames(reg core.DriverRegistry) []string {
	if reg == nil {
		return nil
	}
	var names []string
	for _, d := range reg.Drivers() {
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names
}
