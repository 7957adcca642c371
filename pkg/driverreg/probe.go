package driverreg

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapconn/pkg/core"
)

// AnyAccepts scans drivers in order and returns true on the first one that
// accepts url. A driver that fails or panics while answering counts as not
// accepting; the scan carries on with the next one.
func AnyAccepts(drivers []core.Driver, url string, logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for _, d := range drivers {
		ok, err := accepts(d, url)
		if err != nil {
			logger.Debug("driver probe failed", slog.String("url", url), slog.Any("error", err))
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

func accepts(d core.Driver, url string) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("driver panicked while checking %s: %v", url, r)
		}
	}()
	if d == nil {
		return false, nil
	}
	return d.AcceptsURL(url)
}
