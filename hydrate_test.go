package settings

import (
	"errors"
	"reflect"
	"testing"
)

type serverConfig struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	Debug bool   `json:"DEBUG"`
}

func TestHydrateFromSnapshot(t *testing.T) {
	s := newConfigured(t, map[string]any{
		"host":  "localhost",
		"port":  8080,
		"DEBUG": true,
	})

	cfg, err := Hydrate[serverConfig](s, "server")
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if cfg.Host != "localhost" || cfg.Port != 8080 || !cfg.Debug {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestHydrateNestsDottedKeys(t *testing.T) {
	type appConfig struct {
		Server serverConfig `json:"server"`
	}

	s := newConfigured(t, map[string]any{
		"server.host": "example.com",
		"server.port": 9090,
	})

	cfg, err := Hydrate[appConfig](s, "app")
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if cfg.Server.Host != "example.com" || cfg.Server.Port != 9090 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestHydrateSeesOverrides(t *testing.T) {
	s := newConfigured(t, map[string]any{"host": "localhost", "port": 80})

	err := s.Override(map[string]any{"port": 8443}).Run(func() error {
		cfg, err := Hydrate[serverConfig](s, "server")
		if err != nil {
			return err
		}
		if cfg.Port != 8443 {
			t.Fatalf("expected overridden port, got %d", cfg.Port)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	cfg, err := Hydrate[serverConfig](s, "server")
	if err != nil {
		t.Fatalf("hydrate after exit: %v", err)
	}
	if cfg.Port != 80 {
		t.Fatalf("expected restored port, got %d", cfg.Port)
	}
}

func TestHydrateBeforeConfigureFails(t *testing.T) {
	s := New()
	if _, err := Hydrate[serverConfig](s, "server"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNestKeys(t *testing.T) {
	tests := []struct {
		name string
		flat map[string]any
		want map[string]any
	}{
		{
			name: "plain keys pass through",
			flat: map[string]any{"host": "a", "port": 1},
			want: map[string]any{"host": "a", "port": 1},
		},
		{
			name: "dotted keys nest",
			flat: map[string]any{"db.pool.max": 10, "db.name": "app"},
			want: map[string]any{
				"db": map[string]any{
					"pool": map[string]any{"max": 10},
					"name": "app",
				},
			},
		},
		{
			name: "flat key wins over nested path",
			flat: map[string]any{"db": "dsn", "db.name": "app"},
			want: map[string]any{"db": "dsn"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nestKeys(tt.flat)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}
