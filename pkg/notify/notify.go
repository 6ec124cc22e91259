// Package notify provides synchronous change notification for settings
// override transitions. Listeners run in registration order; a listener
// failure aborts the remaining dispatch and propagates to the caller, so
// listeners that need isolation must guard themselves.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Phase distinguishes the two sides of an override transition.
type Phase int

const (
	// PhaseEnter fires when an override is applied.
	PhaseEnter Phase = iota
	// PhaseExit fires when an override is removed.
	PhaseExit
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEnter:
		return "enter"
	case PhaseExit:
		return "exit"
	default:
		return "unknown"
	}
}

type noValue struct{}

func (noValue) String() string { return "<no value>" }

// NoValue marks an exiting key that resolves to nothing after restoration.
var NoValue any = noValue{}

// Event describes one key transition. Value is the final value after the
// transition, or NoValue. Events are consumed synchronously and never
// persisted.
type Event struct {
	Source any
	Key    string
	Value  any
	Phase  Phase
}

// Listener receives change events. Returning an error aborts the dispatch
// that delivered the event.
type Listener func(Event) error

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id       uuid.UUID
	notifier *Notifier
}

// ID returns the subscription identifier.
func (s *Subscription) ID() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return s.id
}

// Unsubscribe removes the listener. No-op when already removed.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

type entry struct {
	id       uuid.UUID
	listener Listener
}

// Notifier is a registry of listeners with ordered synchronous dispatch.
// Registration and removal are guarded; dispatch itself assumes the single
// logical thread of override activation the rest of the package assumes.
type Notifier struct {
	mu      sync.RWMutex
	entries []entry
}

// New constructs an empty notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers listener and returns a handle usable to unsubscribe.
func (n *Notifier) Subscribe(listener Listener) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := uuid.New()
	n.entries = append(n.entries, entry{id: id, listener: listener})
	return &Subscription{id: id, notifier: n}
}

// Len reports the number of registered listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.entries)
}

// Dispatch invokes every registered listener in registration order. The
// first listener error stops the dispatch and is returned.
func (n *Notifier) Dispatch(event Event) error {
	n.mu.RLock()
	listeners := make([]Listener, 0, len(n.entries))
	for _, e := range n.entries {
		if e.listener != nil {
			listeners = append(listeners, e.listener)
		}
	}
	n.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener(event); err != nil {
			return err
		}
	}
	return nil
}

func (n *Notifier) unsubscribe(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, e := range n.entries {
		if e.id == id {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return
		}
	}
}
