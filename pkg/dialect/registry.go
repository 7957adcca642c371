// Package dialect holds the registry of connection dialects and the Base
// dialect that concrete products embed.
//
// Concrete dialects live in pkg/dialects/ and register themselves in init():
//
//	import _ "github.com/leapstack-labs/leapconn/pkg/dialects/snowflake"
package dialect

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/leapconn/pkg/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]core.Dialect)

	upper = cases.Upper(language.Und)
)

// NormalizeType maps a type code to its registry key.
func NormalizeType(code string) string {
	return upper.String(strings.TrimSpace(code))
}

// Register adds a dialect under its DatabaseType().ShortName.
// Called by dialect implementations in their init() functions.
func Register(d core.Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[NormalizeType(d.DatabaseType().ShortName)] = d
}

// Get retrieves a dialect by type code. Matching is case-insensitive.
func Get(code string) (core.Dialect, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[NormalizeType(code)]
	return d, ok
}

// ForType is Get with an UnknownDialectError for missing codes.
func ForType(code string) (core.Dialect, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("dialect type not specified")
	}
	d, ok := Get(code)
	if !ok {
		return nil, &UnknownDialectError{
			Type:      code,
			Available: List(),
		}
	}
	return d, nil
}

// List returns all registered type codes (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// All returns every registered dialect, ordered by type code.
func All() []core.Dialect {
	codes := List()
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]core.Dialect, 0, len(codes))
	for _, code := range codes {
		if d, ok := registry[code]; ok {
			out = append(out, d)
		}
	}
	return out
}

// IsRegistered checks if a type code is registered.
func IsRegistered(code string) bool {
	_, ok := Get(code)
	return ok
}

// UnknownDialectError is returned when an unknown type code is requested.
type UnknownDialectError struct {
	Type      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect type %q\nAvailable dialects: %v\nHint: Check the type of your target in leapconn.yaml", e.Type, e.Available)
}
