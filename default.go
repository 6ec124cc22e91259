package settings

import (
	"fmt"
	"iter"
	"os"

	"github.com/goliatone/go-settings/source"
)

// EnvConfigFile names the environment variable the default instance reads to
// locate its root configuration, a TOML file.
const EnvConfigFile = "GO_SETTINGS_FILE"

// Default is the process-wide instance, lazily initialized from the file
// named by EnvConfigFile on first access. Programs that do not want
// environment-driven loading call Configure before any access.
var Default = New(WithLoader(FileLoader(EnvConfigFile)))

// FileLoader returns a Loader that resolves a TOML file from the named
// environment variable. An unset or empty variable fails the load, which the
// proxy surfaces as ErrNotConfigured.
func FileLoader(envVar string) Loader {
	return func() (Source, error) {
		path := os.Getenv(envVar)
		if path == "" {
			return nil, fmt.Errorf("environment variable %s is not set", envVar)
		}
		return source.FromTOMLFile(path)
	}
}

// Get resolves key on the default instance.
func Get(key string) (any, error) {
	return Default.Get(key)
}

// Set assigns key on the default instance.
func Set(key string, value any) error {
	return Default.Set(key, value)
}

// Delete removes key on the default instance.
func Delete(key string) error {
	return Default.Delete(key)
}

// Keys enumerates the default instance's visible keys.
func Keys() (iter.Seq[string], error) {
	return Default.Keys()
}

// OverrideDefault constructs an override scope on the default instance. The
// name avoids colliding with the Override type.
func OverrideDefault(options map[string]any) *Override {
	return Default.Override(options)
}

// Configure explicitly initializes the default instance.
func Configure(defaults Source, options map[string]any) error {
	return Default.Configure(defaults, options)
}

// IsConfigured reports whether the default instance initialized.
func IsConfigured() bool {
	return Default.IsConfigured()
}
