package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a key has no visible value anywhere in the
	// current fallback chain, or was explicitly deleted along it.
	ErrNotFound = errors.New("settings: key not found")
	// ErrNotConfigured indicates the proxy was accessed before any
	// configuration source was established and no loader is available.
	ErrNotConfigured = errors.New("settings: not configured")
	// ErrAlreadyConfigured indicates Configure was called after
	// initialization already occurred.
	ErrAlreadyConfigured = errors.New("settings: already configured")
	// ErrInvalidOperation indicates a state mutation outside the sanctioned
	// operations, such as enabling an already-active override.
	ErrInvalidOperation = errors.New("settings: invalid operation")
)

func notFound(key string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, key)
}

// IsNotFound reports whether err represents a missing key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
