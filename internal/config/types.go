// Package config provides shared configuration types for leapconn.
// This package is decoupled from CLI concerns: it knows how to read a
// project file and how to turn a configured target into a core.Connection.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
)

// ErrUnknownTarget is returned when a named target is not configured.
var ErrUnknownTarget = errors.New("unknown target")

// ProjectConfig holds the targets declared in a leapconn.yaml file.
type ProjectConfig struct {
	DefaultTarget string                        `koanf:"default_target"`
	Targets       map[string]*core.TargetConfig `koanf:"targets"`
}

// Target returns the named target, or the default target when name is empty.
func (p *ProjectConfig) Target(name string) (*core.TargetConfig, error) {
	return LookupTarget(p.Targets, p.DefaultTarget, name)
}

// LookupTarget resolves name (or fallback when name is empty) in targets.
func LookupTarget(targets map[string]*core.TargetConfig, fallback, name string) (*core.TargetConfig, error) {
	if name == "" {
		name = fallback
	}
	if name == "" {
		return nil, fmt.Errorf("%w: no target given and no default_target configured", ErrUnknownTarget)
	}
	t, ok := targets[name]
	if !ok || t == nil {
		return nil, fmt.Errorf("%w %q (configured: %v)", ErrUnknownTarget, name, TargetNames(targets))
	}
	return t, nil
}

// TargetNames returns the configured target names, sorted.
func TargetNames(targets map[string]*core.TargetConfig) []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateTarget checks that the target names a registered dialect and a
// known access type.
func ValidateTarget(t *core.TargetConfig) error {
	if t == nil {
		return fmt.Errorf("target is nil")
	}
	if _, err := dialect.ForType(ResolveType(t.Type)); err != nil {
		return err
	}
	if _, err := core.ParseAccessType(t.Access); err != nil {
		return err
	}
	return nil
}

// ToConnection converts a target into the connection description dialects
// read. Account, warehouse and role are folded into the attributes.
func ToConnection(t *core.TargetConfig) (core.Connection, error) {
	if t == nil {
		return core.Connection{}, fmt.Errorf("target is nil")
	}
	access, err := core.ParseAccessType(t.Access)
	if err != nil {
		return core.Connection{}, err
	}

	attrs, err := DecodeAttributes(t.Attributes)
	if err != nil {
		return core.Connection{}, err
	}
	for key, val := range map[string]string{
		"account":   t.Account,
		"warehouse": t.Warehouse,
		"role":      t.Role,
	} {
		if val != "" {
			attrs[key] = val
		}
	}

	var opts map[string]string
	if len(t.Options) > 0 {
		opts = make(map[string]string, len(t.Options))
		for k, v := range t.Options {
			opts[k] = v
		}
	}

	return core.Connection{
		AccessType:   access,
		Hostname:     t.Host,
		Port:         t.Port,
		DatabaseName: t.Database,
		Username:     t.User,
		Password:     t.Password,
		Attributes:   attrs,
		ExtraOptions: opts,
	}, nil
}

// DecodeAttributes converts free-form YAML attribute values into strings.
// Numbers are rendered in decimal and booleans as true/false.
func DecodeAttributes(in map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(in))
	if len(in) == 0 {
		return out, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       boolToStringHook,
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(in); err != nil {
		return nil, fmt.Errorf("invalid target attributes: %w", err)
	}
	return out, nil
}

// boolToStringHook keeps "true"/"false"; weak decoding alone yields "1"/"0".
func boolToStringHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.Bool && to.Kind() == reflect.String {
		return strconv.FormatBool(data.(bool)), nil
	}
	return data, nil
}
