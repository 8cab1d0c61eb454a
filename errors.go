package dbhelpers

import (
	"errors"

	"github.com/itjac/dbhelpers/private/convert"
)

// Error categories returned by this package. Use errors.Is to test
// which category an error belongs to.
var (
	// ErrConfiguration indicates a missing or invalid data source
	// configuration: an unregistered driver, a missing named entry,
	// or an empty connection string.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument indicates an argument that is out of range,
	// such as a negative skip count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidTemplate indicates a command template that references
	// an argument slot for which no argument was supplied.
	ErrInvalidTemplate = errors.New("invalid command template")

	// ErrUnsupportedDriver indicates that the driver does not expose a
	// capability the requested operation needs, such as placeholder
	// rendering or bulk table fills.
	ErrUnsupportedDriver = errors.New("unsupported driver")

	// ErrConversion indicates a value that cannot be represented in the
	// requested target type.
	ErrConversion = convert.ErrConversion

	// ErrDuplicateKey indicates that a map materialization produced the
	// same key for two different rows.
	ErrDuplicateKey = errors.New("duplicate key")
)
