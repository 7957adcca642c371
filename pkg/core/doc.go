// Package core defines the shared language of leapconn.
//
// This package contains:
//   - Connection descriptions (Connection, AccessType)
//   - Product metadata (DatabaseType)
//   - Service interfaces (Dialect, Driver, DriverRegistry, Environment)
//   - Configuration types (TargetConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
