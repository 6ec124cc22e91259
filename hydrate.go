package settings

import (
	"strings"

	"github.com/goliatone/go-settings/internal/hydrate"
)

// Hydrate decodes the visible snapshot of s into T. Dotted keys are nested
// beforehand, so "server.port" lands on a Server struct's Port field. Field
// matching follows encoding/json rules.
func Hydrate[T any](s *Settings, name string) (T, error) {
	var zero T
	snapshot, err := s.Snapshot()
	if err != nil {
		return zero, err
	}
	decoder := hydrate.NewDecoder[T]()
	return decoder.Decode(hydrate.Context{Name: name}, nestKeys(snapshot))
}

// nestKeys expands dotted keys into nested maps. A flat key always wins over
// a conflicting nested path with the same name.
func nestKeys(flat map[string]any) map[string]any {
	nested := make(map[string]any, len(flat))
	for key, value := range flat {
		parts := strings.Split(key, ".")
		cursor := nested
		for i, part := range parts {
			if i == len(parts)-1 {
				cursor[part] = value
				break
			}
			child, ok := cursor[part].(map[string]any)
			if !ok {
				if _, taken := cursor[part]; taken {
					break
				}
				child = make(map[string]any)
				cursor[part] = child
			}
			cursor = child
		}
	}
	return nested
}
