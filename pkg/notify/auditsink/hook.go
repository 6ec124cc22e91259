// Package auditsink bridges settings change events into a go-users
// ActivitySink so override activity can feed an audit trail.
package auditsink

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-settings/pkg/notify"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

const (
	// VerbEntered records an override being applied to a key.
	VerbEntered = "settings.override.entered"
	// VerbExited records an override being removed from a key.
	VerbExited = "settings.override.exited"
)

// Hook maps change events into activity records. ActorID and TenantID
// identify who is driving the overrides; both are optional.
type Hook struct {
	Sink     usertypes.ActivitySink
	ActorID  string
	TenantID string
	Channel  string
}

// Listener returns a notify.Listener that logs every event to the sink.
func (h Hook) Listener(ctx context.Context) notify.Listener {
	return func(event notify.Event) error {
		return h.Notify(ctx, event)
	}
}

// Notify converts event into an ActivityRecord and forwards it to the sink.
func (h Hook) Notify(ctx context.Context, event notify.Event) error {
	if h.Sink == nil {
		return nil
	}
	if event.Key == "" {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	record := usertypes.ActivityRecord{
		ActorID:    parseUUID(h.ActorID),
		TenantID:   parseUUID(h.TenantID),
		Verb:       verbFor(event.Phase),
		ObjectType: "setting",
		ObjectID:   event.Key,
		Channel:    h.Channel,
		Data: map[string]any{
			"phase": event.Phase.String(),
			"value": describeValue(event.Value),
		},
		OccurredAt: time.Now(),
	}
	return h.Sink.Log(ctx, record)
}

func verbFor(phase notify.Phase) string {
	if phase == notify.PhaseExit {
		return VerbExited
	}
	return VerbEntered
}

func describeValue(value any) string {
	if value == notify.NoValue {
		return "<no value>"
	}
	return fmt.Sprintf("%v", value)
}

func parseUUID(input string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(input))
	if err != nil {
		return uuid.Nil
	}
	return id
}
