package source

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/viper"
)

func TestMapCloneIsolation(t *testing.T) {
	values := map[string]any{"A": 1, "nested": map[string]any{"k": "v"}}
	m := NewMap(values)

	values["A"] = 99
	values["nested"].(map[string]any)["k"] = "mutated"

	if value, _ := m.Lookup("A"); value != 1 {
		t.Fatalf("expected cloned value, got %v", value)
	}
	nested, _ := m.Lookup("nested")
	if nested.(map[string]any)["k"] != "v" {
		t.Fatalf("expected deep clone, got %v", nested)
	}
}

func TestMapKeysSorted(t *testing.T) {
	m := NewMap(map[string]any{"B": 1, "A": 2, "C": 3})
	want := []string{"A", "B", "C"}
	if got := m.Keys(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMapZeroValue(t *testing.T) {
	var m Map
	if _, ok := m.Lookup("A"); ok {
		t.Fatal("expected miss on zero value")
	}
	if keys := m.Keys(); len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}

func TestFromTOMLFlattensTables(t *testing.T) {
	payload := []byte("DEBUG = true\n\n[server]\nhost = \"localhost\"\nport = 8080\n\n[server.tls]\nenabled = false\n")
	m, err := FromTOML(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	cases := map[string]any{
		"DEBUG":              true,
		"server.host":        "localhost",
		"server.port":        int64(8080),
		"server.tls.enabled": false,
	}
	for key, want := range cases {
		value, ok := m.Lookup(key)
		if !ok || value != want {
			t.Fatalf("%s: expected %v, got %v (%v)", key, want, value, ok)
		}
	}
}

func TestFromTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	if err := os.WriteFile(path, []byte("NAME = \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := FromTOMLFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if value, ok := m.Lookup("NAME"); !ok || value != "demo" {
		t.Fatalf("expected demo, got %v (%v)", value, ok)
	}

	if _, err := FromTOMLFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnvironStripsPrefix(t *testing.T) {
	t.Setenv("GOSETTINGSTEST_DEBUG", "true")
	t.Setenv("GOSETTINGSTEST_HOST", "localhost")
	t.Setenv("UNRELATED_KEY", "ignored")

	m := Environ("GOSETTINGSTEST_")
	if value, ok := m.Lookup("DEBUG"); !ok || value != "true" {
		t.Fatalf("expected DEBUG captured, got %v (%v)", value, ok)
	}
	if value, ok := m.Lookup("HOST"); !ok || value != "localhost" {
		t.Fatalf("expected HOST captured, got %v (%v)", value, ok)
	}
	if _, ok := m.Lookup("KEY"); ok {
		t.Fatal("unrelated variable leaked in")
	}
}

func TestFromViperAdapter(t *testing.T) {
	v := viper.New()
	v.Set("debug", true)
	v.Set("server.port", 8080)

	s := FromViper(v)
	if value, ok := s.Lookup("debug"); !ok || value != true {
		t.Fatalf("expected debug, got %v (%v)", value, ok)
	}
	if value, ok := s.Lookup("server.port"); !ok || value != 8080 {
		t.Fatalf("expected server.port, got %v (%v)", value, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("expected miss for unset key")
	}

	keys := s.Keys()
	if !slices.Contains(keys, "debug") || !slices.Contains(keys, "server.port") {
		t.Fatalf("unexpected keys: %v", keys)
	}

	var nilAdapter *Viper
	if _, ok := nilAdapter.Lookup("any"); ok {
		t.Fatal("nil adapter should miss")
	}
}
