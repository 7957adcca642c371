package mysql

import (
	"log/slog"

	"github.com/leapstack-labs/leapconn/pkg/adapter"
	mydialect "github.com/leapstack-labs/leapconn/pkg/dialects/mysql"
)

func init() {
	adapter.Register(mydialect.TypeCode, func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
