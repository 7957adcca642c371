package postgres

import (
	"log/slog"

	"github.com/leapstack-labs/leapconn/pkg/adapter"
	pgdialect "github.com/leapstack-labs/leapconn/pkg/dialects/postgres"
)

func init() {
	adapter.Register(pgdialect.TypeCode, func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
