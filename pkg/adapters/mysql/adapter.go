// Package mysql provides a MySQL connection adapter for leapconn.
package mysql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/leapstack-labs/leapconn/pkg/adapter"
	"github.com/leapstack-labs/leapconn/pkg/core"
	mydialect "github.com/leapstack-labs/leapconn/pkg/dialects/mysql"
)

// Adapter implements the adapter.Adapter interface for MySQL.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new MySQL adapter instance.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{BaseSQLAdapter: adapter.NewBase(logger)}
}

// DriverName returns "mysql".
func (a *Adapter) DriverName() string { return "mysql" }

// Dialect returns the MySQL dialect.
func (a *Adapter) Dialect() core.Dialect { return mydialect.MySQL }

// Connect opens a connection through the driver's Connector.
func (a *Adapter) Connect(ctx context.Context, conn core.Connection) error {
	cfg := buildConfig(conn)

	a.Logger.Debug("connecting to mysql",
		slog.String("addr", cfg.Addr),
		slog.String("database", cfg.DBName))

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return fmt.Errorf("invalid mysql connection settings: %w", err)
	}
	return a.OpenConnector(ctx, a.DriverName(), connector)
}

// DSN formats the connection in go-sql-driver syntax,
// e.g. user:pass@tcp(host:3306)/db?key=value.
func (a *Adapter) DSN(conn core.Connection) (string, error) {
	return buildConfig(conn).FormatDSN(), nil
}

func buildConfig(conn core.Connection) *mysql.Config {
	host := conn.Hostname
	if host == "" {
		host = "localhost"
	}
	port := conn.Port
	if port == 0 {
		port = mydialect.DatabaseType.DefaultPort
	}

	cfg := mysql.NewConfig()
	cfg.User = conn.Username
	cfg.Passwd = conn.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	cfg.DBName = conn.DatabaseName
	if len(conn.ExtraOptions) > 0 {
		cfg.Params = make(map[string]string, len(conn.ExtraOptions))
		for k, v := range conn.ExtraOptions {
			cfg.Params[k] = v
		}
	}
	return cfg
}

var _ adapter.Adapter = (*Adapter)(nil)
