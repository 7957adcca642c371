package adapter

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/leapstack-labs/leapconn/pkg/dialect"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func(*slog.Logger) Adapter)
)

// Register adds an adapter factory under a dialect type code.
// Called by adapter implementations in their init() functions.
func Register(code string, factory func(*slog.Logger) Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[dialect.NormalizeType(code)] = factory
}

// Get retrieves an adapter factory by type code.
func Get(code string) (func(*slog.Logger) Adapter, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[dialect.NormalizeType(code)]
	return f, ok
}

// NewAdapter creates a new adapter instance for a type code.
// The logger parameter is passed to the adapter constructor (nil uses discard logger).
func NewAdapter(code string, logger *slog.Logger) (Adapter, error) {
	if code == "" {
		return nil, fmt.Errorf("adapter type not specified")
	}

	factory, ok := Get(code)
	if !ok {
		return nil, &UnknownAdapterError{
			Type:      code,
			Available: ListAdapters(),
		}
	}
	return factory(logger), nil
}

// ListAdapters returns all registered adapter type codes (sorted).
func ListAdapters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if an adapter type is registered.
func IsRegistered(code string) bool {
	_, ok := Get(code)
	return ok
}

// UnknownAdapterError is returned when no adapter is linked for a type code.
type UnknownAdapterError struct {
	Type      string
	Available []string
}

func (e *UnknownAdapterError) Error() string {
	return fmt.Sprintf("no connection adapter for type %q\nAvailable adapters: %v\nHint: URLs can still be built for every registered dialect", e.Type, e.Available)
}
