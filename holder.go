package settings

import (
	"iter"
	"slices"
)

// Holder is a single shadowing layer: explicit key assignments plus explicit
// deletions over a fallback Source. A key is never in both maps at once --
// Set clears any deletion marker and Delete removes any assignment. The
// fallback reference is non-owning; disposing of a holder never disposes the
// chain beneath it.
type Holder struct {
	values   map[string]any
	deleted  map[string]struct{}
	defaults Source
}

// NewHolder creates an empty holder shadowing defaults. A nil defaults is
// legal and behaves as an empty root.
func NewHolder(defaults Source) *Holder {
	return &Holder{
		values:   make(map[string]any),
		deleted:  make(map[string]struct{}),
		defaults: defaults,
	}
}

// Lookup implements Source so holders can chain.
func (h *Holder) Lookup(key string) (any, bool) {
	if _, gone := h.deleted[key]; gone {
		return nil, false
	}
	if value, ok := h.values[key]; ok {
		return value, true
	}
	if h.defaults == nil {
		return nil, false
	}
	return h.defaults.Lookup(key)
}

// Get resolves key through this holder and its fallback chain.
func (h *Holder) Get(key string) (any, error) {
	value, ok := h.Lookup(key)
	if !ok {
		return nil, notFound(key)
	}
	return value, nil
}

// Set assigns value to key at this layer, clearing any deletion marker.
func (h *Holder) Set(key string, value any) {
	delete(h.deleted, key)
	h.values[key] = value
}

// Delete removes key at this layer. The key is shadowed even when only the
// fallback provided a value, and the fallback's value survives untouched.
func (h *Holder) Delete(key string) {
	delete(h.values, key)
	h.deleted[key] = struct{}{}
}

// Defaults returns the fallback this holder shadows.
func (h *Holder) Defaults() Source {
	return h.defaults
}

// Keys implements Source, returning the visible keys in sorted order.
func (h *Holder) Keys() []string {
	seen := make(map[string]struct{}, len(h.values))
	keys := make([]string, 0, len(h.values))
	for key := range h.values {
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	if h.defaults != nil {
		for _, key := range h.defaults.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			if _, gone := h.deleted[key]; gone {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// All yields the visible keys as a restartable sequence, for introspection.
func (h *Holder) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, key := range h.Keys() {
			if !yield(key) {
				return
			}
		}
	}
}
