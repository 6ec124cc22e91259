// Package settings provides a lazily-initialized configuration surface that
// can be temporarily shadowed by scoped overrides. Reads and writes flow
// through a proxy into the active Holder, which resolves unassigned keys
// against a fallback chain terminating at an opaque root Source. Overrides
// swap a fresh holder in for the duration of a call or block and restore the
// prior holder on exit, firing change notifications both ways.
package settings

import (
	"fmt"
	"iter"

	"github.com/goliatone/go-settings/pkg/notify"
)

// Settings is the process-facing configuration proxy. The zero value is not
// usable; construct instances with New. Initialization happens exactly once,
// either explicitly through Configure or lazily through the injected Loader
// on first access.
//
// The active-holder reference is mutable shared state with no locking; the
// design assumes a single logical thread of override activation at a time.
type Settings struct {
	current *Holder
	loadErr error
	cfg     settingsConfig
	complex map[string]struct{}
}

// New constructs a Settings instance from the supplied options.
func New(opts ...Option) *Settings {
	cfg := applyOptions(opts)
	if cfg.notifier == nil {
		cfg.notifier = notify.New()
	}
	return &Settings{
		cfg:     cfg,
		complex: make(map[string]struct{}),
	}
}

// Configure initializes the proxy explicitly, wrapping defaults as the root
// of the holder chain and applying options as initial assignments. It fails
// with ErrAlreadyConfigured once initialization happened through any path.
func (s *Settings) Configure(defaults Source, options map[string]any) error {
	if s.current != nil {
		return ErrAlreadyConfigured
	}
	if defaults == nil {
		return fmt.Errorf("%w: nil default source", ErrInvalidOperation)
	}
	holder := NewHolder(defaults)
	for key, value := range options {
		holder.Set(key, value)
	}
	s.current = holder
	s.loadErr = nil
	return nil
}

// IsConfigured reports whether initialization happened. It never triggers
// the deferred loader.
func (s *Settings) IsConfigured() bool {
	return s.current != nil
}

// Get resolves key through the active holder chain, initializing first when
// needed.
func (s *Settings) Get(key string) (any, error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}
	return s.current.Get(key)
}

// Set assigns key in the active holder. No change notification fires for
// direct mutation; notifications belong to override transitions.
func (s *Settings) Set(key string, value any) error {
	if err := s.ensureInitialized(); err != nil {
		return err
	}
	s.current.Set(key, value)
	return nil
}

// Delete removes key from the active holder, shadowing any fallback value.
func (s *Settings) Delete(key string) error {
	if err := s.ensureInitialized(); err != nil {
		return err
	}
	s.current.Delete(key)
	return nil
}

// Keys enumerates the visible keys as a restartable sorted sequence.
func (s *Settings) Keys() (iter.Seq[string], error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}
	return s.current.All(), nil
}

// Snapshot materializes every visible key into a fresh map.
func (s *Settings) Snapshot() (map[string]any, error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}
	snapshot := make(map[string]any)
	for key := range s.current.All() {
		if value, ok := s.current.Lookup(key); ok {
			snapshot[key] = value
		}
	}
	return snapshot, nil
}

// Notifier exposes the change notifier so callers can subscribe to override
// transitions.
func (s *Settings) Notifier() *notify.Notifier {
	return s.cfg.notifier
}

// ensureInitialized runs the deferred setup on first access. A loader that
// fails is not retried; the wrapped failure is returned on every subsequent
// access until Configure succeeds.
func (s *Settings) ensureInitialized() error {
	if s.current != nil {
		return nil
	}
	if s.loadErr != nil {
		return s.loadErr
	}
	if s.cfg.loader == nil {
		return fmt.Errorf("%w: supply a loader or call Configure before accessing settings", ErrNotConfigured)
	}
	root, err := s.cfg.loader()
	if err != nil {
		s.loadErr = fmt.Errorf("%w: loading root configuration: %v", ErrNotConfigured, err)
		return s.loadErr
	}
	if root == nil {
		s.loadErr = fmt.Errorf("%w: loader produced no root configuration", ErrNotConfigured)
		return s.loadErr
	}
	s.current = NewHolder(root)
	return nil
}
