// Package redshift provides an Amazon Redshift connection adapter for leapconn.
// Redshift speaks the PostgreSQL wire protocol and is reached through lib/pq.
package redshift

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"

	"github.com/leapstack-labs/leapconn/pkg/adapter"
	"github.com/leapstack-labs/leapconn/pkg/core"
	rsdialect "github.com/leapstack-labs/leapconn/pkg/dialects/redshift"
	"github.com/lib/pq"
)

// Adapter implements the adapter.Adapter interface for Redshift.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new Redshift adapter instance.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{BaseSQLAdapter: adapter.NewBase(logger)}
}

// DriverName returns "postgres", the name lib/pq registers.
func (a *Adapter) DriverName() string { return "postgres" }

// Dialect returns the Redshift dialect.
func (a *Adapter) Dialect() core.Dialect { return rsdialect.Redshift }

// Connect opens a lib/pq connection to the cluster.
func (a *Adapter) Connect(ctx context.Context, conn core.Connection) error {
	dsn, err := a.DSN(conn)
	if err != nil {
		return err
	}

	a.Logger.Debug("connecting to redshift",
		slog.String("host", conn.Hostname),
		slog.String("database", conn.DatabaseName))

	return a.Open(ctx, a.DriverName(), dsn)
}

// DSN builds a postgres:// URL and lets lib/pq convert it to key=value form.
// TLS is required unless sslmode is set explicitly.
func (a *Adapter) DSN(conn core.Connection) (string, error) {
	if conn.Hostname == "" {
		return "", fmt.Errorf("redshift: hostname is required")
	}
	port := conn.Port
	if port == 0 {
		port = rsdialect.DatabaseType.DefaultPort
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(conn.Hostname, strconv.Itoa(port)),
		Path:   "/" + conn.DatabaseName,
	}
	switch {
	case conn.Username != "" && conn.Password != "":
		u.User = url.UserPassword(conn.Username, conn.Password)
	case conn.Username != "":
		u.User = url.User(conn.Username)
	}

	q := url.Values{}
	q.Set("sslmode", "require")
	for k, v := range conn.ExtraOptions {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	dsn, err := pq.ParseURL(u.String())
	if err != nil {
		return "", fmt.Errorf("invalid redshift connection settings: %w", err)
	}
	return dsn, nil
}

var _ adapter.Adapter = (*Adapter)(nil)
