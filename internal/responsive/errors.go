package responsive

import (
	"errors"
	"fmt"
)

// Resolution fails with one of these; match them with errors.Is.
var (
	// ErrNotFound reports an unknown set name, either requested directly or
	// referenced from an art direction list.
	ErrNotFound = errors.New("responsive set not found")

	// ErrInvalidConfig reports missing or malformed set configuration.
	ErrInvalidConfig = errors.New("invalid responsive set config")

	// ErrUnsupportedMethod reports a resample method the base image does not provide.
	ErrUnsupportedMethod = errors.New("unsupported image method")
)

// UnsupportedMethodError names the method an image resource could not run.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedMethod, e.Method)
}

// Is makes errors.Is(err, ErrUnsupportedMethod) hold.
func (e *UnsupportedMethodError) Is(target error) bool {
	return target == ErrUnsupportedMethod
}

func notFound(setName string) error {
	return fmt.Errorf("%w: unable to find set matching %q", ErrNotFound, setName)
}

func invalidConfig(setName, format string, args ...interface{}) error {
	return fmt.Errorf("%w: set %q: %s", ErrInvalidConfig, setName, fmt.Sprintf(format, args...))
}
