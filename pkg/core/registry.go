package core

import "log/slog"

// Driver is one entry of a driver registry.
type Driver interface {
	// Name identifies the driver.
	Name() string
	// AcceptsURL reports whether the driver can handle url.
	AcceptsURL(url string) (bool, error)
}

// DriverRegistry is a read-only view of the drivers loaded in the process.
type DriverRegistry interface {
	Drivers() []Driver
}

// Environment is what a dialect may consult when probing for a usable driver.
// It is supplied by the host at invocation time.
type Environment struct {
	// Drivers is the registry queried for URL acceptance. Nil means empty.
	Drivers DriverRegistry

	// CanLoad reports whether the named native driver is available. Nil means never.
	CanLoad func(name string) bool

	// Logger receives probe failures at debug level. Nil falls back to the
	// dialect's own logger.
	Logger *slog.Logger
}

// Loadable calls CanLoad, treating a nil function as "not loadable".
func (e Environment) Loadable(name string) bool {
	return e.CanLoad != nil && e.CanLoad(name)
}

// RegisteredDrivers returns the registry's drivers, or nil when there is no registry.
func (e Environment) RegisteredDrivers() []Driver {
	if e.Drivers == nil {
		return nil
	}
	return e.Drivers.Drivers()
}
