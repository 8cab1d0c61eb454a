package dbhelpers

import (
	"fmt"
	"sort"
	"sync"
)

// DataSource names a registered driver and the connection string to
// pass to it.
type DataSource struct {
	Driver     string
	DataSource string
}

// Config is a set of named data sources, typically loaded from the
// program's configuration file.
type Config map[string]DataSource

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes a driver available under the given name for use with
// Open and OpenDataSource. It panics if called twice with the same
// name or if the driver is nil, matching the convention of
// database/sql.Register.
func Register(name string, driver Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("dbhelpers: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("dbhelpers: Register called twice for driver " + name)
	}
	drivers[name] = driver
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open returns an engine for a registered driver name and a connection
// string.
func Open(driverName, dataSource string) (*Engine, error) {
	driversMu.RLock()
	driver, ok := drivers[driverName]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown driver %q (forgotten import?)", ErrConfiguration, driverName)
	}
	return New(driver, dataSource)
}

// OpenDataSource returns an engine for a named entry in the
// configuration.
func OpenDataSource(cfg Config, name string) (*Engine, error) {
	ds, ok := cfg[name]
	if !ok {
		return nil, fmt.Errorf("%w: no data source named %q", ErrConfiguration, name)
	}
	return Open(ds.Driver, ds.DataSource)
}
