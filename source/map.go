// Package source provides root configuration sources for go-settings:
// in-memory maps, TOML files, environment variables, and a viper adapter.
// All of them expose flat string keys; nested structures are flattened to
// dotted paths.
package source

import "sort"

// Map is an in-memory root source. The zero value is usable.
type Map struct {
	values map[string]any
}

// NewMap constructs a source over values. The map is cloned so later caller
// mutation does not leak into the source.
func NewMap(values map[string]any) *Map {
	return &Map{values: cloneMap(values)}
}

// Lookup resolves key.
func (m *Map) Lookup(key string) (any, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Keys returns every key in sorted order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
