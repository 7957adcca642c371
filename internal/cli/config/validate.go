package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/leapconn/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/leapconn/internal/config"
)

// ParseLogLevel maps a level name (debug, info, warn, error) to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return level, nil
}

// Validate checks if the configuration is valid.
// Every target is checked so that all problems are reported at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if c.DefaultTarget != "" {
		if _, ok := c.Targets[c.DefaultTarget]; !ok {
			errs = append(errs, fmt.Errorf("default_target %q is not defined in targets", c.DefaultTarget))
		}
	}
	for _, name := range c.TargetNames() {
		if err := sharedcfg.ValidateTarget(c.Targets[name]); err != nil {
			errs = append(errs, fmt.Errorf("target %q: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
