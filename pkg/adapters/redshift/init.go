package redshift

import (
	"log/slog"

	"github.com/leapstack-labs/leapconn/pkg/adapter"
	rsdialect "github.com/leapstack-labs/leapconn/pkg/dialects/redshift"
)

func init() {
	adapter.Register(rsdialect.TypeCode, func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}
