package settings

import (
	"encoding/json"
)

// Trace captures provenance information for a key lookup across the holder
// chain that produced (or suppressed) the effective value. Introspection and
// debugging only.
type Trace struct {
	Key    string       `json:"key"`
	Layers []Provenance `json:"layers"`
}

// Provenance details how one chain position contributed to a traced key.
// Depth 0 is the active holder; the final entry is the root source.
type Provenance struct {
	Depth    int  `json:"depth"`
	Root     bool `json:"root,omitempty"`
	Assigned bool `json:"assigned,omitempty"`
	Deleted  bool `json:"deleted,omitempty"`
	Value    any  `json:"value,omitempty"`
	Found    bool `json:"found"`
}

// Trace walks the chain for key, recording per layer whether the key was
// assigned, explicitly deleted, or passed through.
func (s *Settings) Trace(key string) (Trace, error) {
	if err := s.ensureInitialized(); err != nil {
		return Trace{}, err
	}

	trace := Trace{Key: key}
	resolved := false
	depth := 0
	var cursor Source = s.current
	for cursor != nil {
		holder, ok := cursor.(*Holder)
		if !ok {
			value, found := cursor.Lookup(key)
			entry := Provenance{Depth: depth, Root: true}
			if found && !resolved {
				entry.Value = value
				entry.Found = true
			}
			trace.Layers = append(trace.Layers, entry)
			break
		}

		entry := Provenance{Depth: depth}
		if _, gone := holder.deleted[key]; gone {
			entry.Deleted = true
			if !resolved {
				entry.Found = true
				resolved = true
			}
		} else if value, assigned := holder.values[key]; assigned {
			entry.Assigned = true
			if !resolved {
				entry.Value = value
				entry.Found = true
				resolved = true
			}
		}
		trace.Layers = append(trace.Layers, entry)
		cursor = holder.defaults
		depth++
	}
	return trace, nil
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated
// via ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
