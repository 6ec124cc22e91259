package source

import (
	"os"
	"sort"
	"strings"
)

// Environ reads environment variables carrying prefix and exposes them with
// the prefix stripped, so with prefix "APP_" the variable APP_DEBUG becomes
// key "DEBUG". The environment is captured at construction time.
func Environ(prefix string) *Map {
	values := make(map[string]any)
	for _, pair := range os.Environ() {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		key := strings.TrimPrefix(name, prefix)
		if key == "" {
			continue
		}
		values[key] = value
	}
	return &Map{values: values}
}

// Names returns the environment variable names a prefix captures, mostly for
// diagnostics.
func Names(prefix string) []string {
	var names []string
	for _, pair := range os.Environ() {
		name, _, ok := strings.Cut(pair, "=")
		if ok && strings.HasPrefix(name, prefix) && name != prefix {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
