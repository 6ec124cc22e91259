package hydrate

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type target struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

func TestDecodeBasic(t *testing.T) {
	decoder := NewDecoder[target]()
	result, err := decoder.Decode(Context{Name: "server"}, map[string]any{
		"host": "localhost",
		"port": 8080,
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Host != "localhost" || result.Port != 8080 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecodeNilSnapshot(t *testing.T) {
	decoder := NewDecoder[target]()
	if _, err := decoder.Decode(Context{Name: "server"}, nil); err == nil {
		t.Fatal("expected error for nil snapshot")
	}
}

func TestDecodePreHookMutatesSnapshot(t *testing.T) {
	decoder := NewDecoder[target](
		WithPreHook[target](func(_ Context, snapshot map[string]any) (map[string]any, error) {
			snapshot["host"] = strings.ToUpper(snapshot["host"].(string))
			return snapshot, nil
		}),
	)
	result, err := decoder.Decode(Context{}, map[string]any{"host": "localhost"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Host != "LOCALHOST" {
		t.Fatalf("expected pre-hook to apply, got %q", result.Host)
	}
}

func TestDecodePreHookDoesNotMutateCaller(t *testing.T) {
	decoder := NewDecoder[target](
		WithPreHook[target](func(_ Context, snapshot map[string]any) (map[string]any, error) {
			snapshot["host"] = "changed"
			return snapshot, nil
		}),
	)
	original := map[string]any{"host": "localhost"}
	if _, err := decoder.Decode(Context{}, original); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if original["host"] != "localhost" {
		t.Fatalf("caller snapshot mutated: %v", original["host"])
	}
}

func TestDecodePostHookValidates(t *testing.T) {
	wantErr := errors.New("port out of range")
	decoder := NewDecoder[target](
		WithPostHook[target](func(_ Context, result *target) error {
			if result.Port > 65535 {
				return wantErr
			}
			return nil
		}),
	)
	_, err := decoder.Decode(Context{Name: "server"}, map[string]any{"port": 70000})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected post-hook error, got %v", err)
	}
}

func TestDecodeCustomDecoder(t *testing.T) {
	decoder := NewDecoder[target](
		WithCustomDecoder[target](func(_ Context, snapshot map[string]any) (target, error) {
			return target{Host: "custom"}, nil
		}),
	)
	result, err := decoder.Decode(Context{}, map[string]any{"host": "ignored"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Host != "custom" {
		t.Fatalf("expected custom decoder result, got %+v", result)
	}
}

func TestDecodeDisallowUnknownFields(t *testing.T) {
	decoder := NewDecoder[target](WithDisallowUnknownFields[target]())
	_, err := decoder.Decode(Context{Name: "server"}, map[string]any{
		"host":    "localhost",
		"unknown": true,
	})
	if err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestDecodeUseNumber(t *testing.T) {
	type numbers struct {
		Value json.Number `json:"value"`
	}
	decoder := NewDecoder[numbers](WithUseNumber[numbers]())
	result, err := decoder.Decode(Context{}, map[string]any{"value": 12345678901234567})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Value.String() == "" {
		t.Fatalf("expected number string, got %q", result.Value)
	}
}
