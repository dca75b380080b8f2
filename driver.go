// Package snowflakedriver resolves the configuration of the ADBC Snowflake
// driver from the caller and the environment and loads the driver.
package snowflakedriver

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
)

const (
	DriverVendorName = "Snowflake"
	DriverName       = "ADBC Snowflake Driver - Go"
	DriverVersion    = "v0.1.0"
)

// Driver is a loaded driver instance bound to one ADBC version.
// The zero value is unbound; TryLoad binds it to the resolved version.
type Driver struct {
	version ADBCVersion
}

// NewDriverWithVersion returns a handle bound to version. Custom
// DriverConstructor implementations use it to build their result.
func NewDriverWithVersion(version ADBCVersion) *Driver {
	return &Driver{version: version}
}

func (d *Driver) ADBCVersion() ADBCVersion {
	return d.version
}

// Info returns the driver metadata in a stable key order.
func (d *Driver) Info() *orderedmap.OrderedMap {
	info := orderedmap.New()
	info.Set("vendor_name", DriverVendorName)
	info.Set("driver_name", DriverName)
	info.Set("driver_version", DriverVersion)
	info.Set("driver_adbc_version", d.version.Code())
	return info
}

// DriverConstructor replaces DefaultDriverConstructor when set.
var DriverConstructor func(version ADBCVersion) (*Driver, error)

func newDriver(version ADBCVersion) (*Driver, error) {
	if DriverConstructor != nil {
		return DriverConstructor(version)
	}
	return DefaultDriverConstructor(version)
}

func DefaultDriverConstructor(version ADBCVersion) (*Driver, error) {
	if !version.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedADBCVersion, version)
	}
	return NewDriverWithVersion(version), nil
}

// TryLoad loads a Driver with the version held by b, or DefaultADBCVersion
// when none is set. Errors from the constructor are returned as is.
func (b Builder) TryLoad() (*Driver, error) {
	version := b.resolvedADBCVersion()
	debugLogger.Printf("load driver: builder=%q adbc_version=%s", b.String(), version)
	d, err := newDriver(version)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: adbc_version=%s", ErrNilDriver, version)
	}
	if d.version == 0 {
		d.version = version
	}
	return d, nil
}

// NewDriver is equivalent to b.TryLoad().
func NewDriver(b Builder) (*Driver, error) {
	return b.TryLoad()
}
