// Package config provides configuration management for the leapconn CLI.
//
// This package extends the shared configuration from internal/config with
// CLI-specific fields and flag handling. The shared TargetConfig type is
// defined in pkg/core and re-exported here via a type alias for convenience.
package config

import (
	sharedcfg "github.com/leapstack-labs/leapconn/internal/config"
	"github.com/leapstack-labs/leapconn/pkg/core"
)

// TargetConfig is an alias for the shared target configuration.
// This allows CLI code to use config.TargetConfig without importing pkg/core.
type TargetConfig = core.TargetConfig

// Config holds all CLI configuration options.
type Config struct {
	DefaultTarget string                   `koanf:"default_target"`
	LogLevel      string                   `koanf:"log_level"`
	OutputFormat  string                   `koanf:"output"`
	Targets       map[string]*TargetConfig `koanf:"targets"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultLogLevel = sharedcfg.DefaultLogLevel
	DefaultOutput   = sharedcfg.DefaultOutput
)

// Target resolves a configured target by name; an empty name selects
// default_target.
func (c *Config) Target(name string) (*TargetConfig, error) {
	return sharedcfg.LookupTarget(c.Targets, c.DefaultTarget, name)
}

// TargetNames returns the configured target names, sorted.
func (c *Config) TargetNames() []string {
	return sharedcfg.TargetNames(c.Targets)
}
