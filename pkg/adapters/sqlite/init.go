package sqlite

import (
	"log/slog"

	"github.com/leapstack-labs/leapconn/pkg/adapter"
	litedialect "github.com/leapstack-labs/leapconn/pkg/dialects/sqlite"
)

func init() {
	adapter.Register(litedialect.TypeCode, func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
