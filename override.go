package settings

import (
	"fmt"
	"slices"

	"github.com/goliatone/go-settings/pkg/notify"
)

// Override temporarily shadows a set of keys on a Settings instance. Enable
// installs a fresh holder carrying the requested options over the current
// one; Disable restores the exact holder that was current when Enable ran.
//
// Caveat: restoration targets the saved holder, not whatever holder is
// current at Disable time. Improperly nested enable/disable pairs therefore
// silently discard intermediate holders instead of erroring; callers are
// responsible for LIFO discipline.
//
// An override is single-use per activation but may be re-enabled after
// returning to the idle state, capturing fresh saved state each time.
type Override struct {
	settings *Settings
	options  map[string]any
	saved    *Holder
	active   bool
}

// Override constructs a scope that will shadow options when enabled.
func (s *Settings) Override(options map[string]any) *Override {
	copied := make(map[string]any, len(options))
	for key, value := range options {
		copied[key] = value
	}
	return &Override{
		settings: s,
		options:  copied,
	}
}

// Enable installs the override. It initializes the proxy when needed, warns
// about complex settings, and dispatches one entering-phase event per key in
// sorted order.
func (o *Override) Enable() error {
	if o.active {
		return fmt.Errorf("%w: override already enabled", ErrInvalidOperation)
	}
	if err := o.settings.ensureInitialized(); err != nil {
		return err
	}

	holder := NewHolder(o.settings.current)
	keys := o.sortedKeys()
	for _, key := range keys {
		holder.Set(key, o.options[key])
	}

	o.saved = o.settings.current
	o.settings.current = holder
	o.active = true

	for _, key := range keys {
		if o.settings.isComplexSetting(key) {
			o.settings.diagnostics().Warnf(
				"overriding %s does not propagate to subsystems that already consumed it", key)
		}
	}
	for _, key := range keys {
		event := notify.Event{
			Source: o.settings,
			Key:    key,
			Value:  o.options[key],
			Phase:  notify.PhaseEnter,
		}
		if err := o.settings.Notifier().Dispatch(event); err != nil {
			return err
		}
	}
	return nil
}

// Disable restores the holder saved at Enable time and dispatches one
// exiting-phase event per key, carrying the post-restoration value or
// notify.NoValue when the key resolves to nothing.
func (o *Override) Disable() error {
	if !o.active {
		return fmt.Errorf("%w: override not enabled", ErrInvalidOperation)
	}

	o.settings.current = o.saved
	o.saved = nil
	o.active = false

	for _, key := range o.sortedKeys() {
		value, err := o.settings.Get(key)
		if err != nil {
			if !IsNotFound(err) {
				return err
			}
			value = notify.NoValue
		}
		event := notify.Event{
			Source: o.settings,
			Key:    key,
			Value:  value,
			Phase:  notify.PhaseExit,
		}
		if err := o.settings.Notifier().Dispatch(event); err != nil {
			return err
		}
	}
	return nil
}

// Run executes fn inside the override, guaranteeing restoration on every
// exit path including panics. The guarded function's own failure propagates
// unchanged after restoration; a Disable error surfaces only when fn
// succeeded.
func (o *Override) Run(fn func() error) (err error) {
	if enableErr := o.Enable(); enableErr != nil {
		return enableErr
	}
	defer func() {
		disableErr := o.Disable()
		if err == nil {
			err = disableErr
		}
	}()
	return fn()
}

// Wrap returns a callable that runs fn inside the override on every
// invocation.
func (o *Override) Wrap(fn func() error) func() error {
	return func() error {
		return o.Run(fn)
	}
}

func (o *Override) sortedKeys() []string {
	keys := make([]string, 0, len(o.options))
	for key := range o.options {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
