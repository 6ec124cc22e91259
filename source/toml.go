package source

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FromTOMLFile loads a TOML document from path and exposes it as a flat
// source. Nested tables become dotted keys.
func FromTOMLFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: reading %s: %w", path, err)
	}
	return FromTOML(data)
}

// FromTOML parses a TOML payload into a flat source.
func FromTOML(data []byte) (*Map, error) {
	var decoded map[string]any
	if err := toml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("source: parsing toml: %w", err)
	}
	return &Map{values: flatten(decoded)}, nil
}
