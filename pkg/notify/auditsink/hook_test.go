package auditsink_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-settings/pkg/notify"
	"github.com/goliatone/go-settings/pkg/notify/auditsink"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

type recordingSink struct {
	records []usertypes.ActivityRecord
	err     error
}

func (s *recordingSink) Log(_ context.Context, record usertypes.ActivityRecord) error {
	s.records = append(s.records, record)
	return s.err
}

func TestHookNotifyMapsEvent(t *testing.T) {
	sink := &recordingSink{}
	actorID := uuid.New()
	hook := auditsink.Hook{
		Sink:    sink,
		ActorID: actorID.String(),
		Channel: "settings",
	}

	event := notify.Event{
		Key:   "DEBUG",
		Value: true,
		Phase: notify.PhaseEnter,
	}
	if err := hook.Notify(context.Background(), event); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	record := sink.records[0]
	if record.ActorID != actorID {
		t.Fatalf("expected actor %s got %s", actorID, record.ActorID)
	}
	if record.Verb != auditsink.VerbEntered {
		t.Fatalf("expected enter verb, got %s", record.Verb)
	}
	if record.ObjectType != "setting" || record.ObjectID != "DEBUG" {
		t.Fatalf("unexpected object: %s %s", record.ObjectType, record.ObjectID)
	}
	if record.Channel != "settings" {
		t.Fatalf("unexpected channel: %s", record.Channel)
	}
	if record.Data["value"] != "true" {
		t.Fatalf("unexpected value payload: %v", record.Data["value"])
	}
}

func TestHookNotifyExitNoValue(t *testing.T) {
	sink := &recordingSink{}
	hook := auditsink.Hook{Sink: sink}

	event := notify.Event{
		Key:   "DEBUG",
		Value: notify.NoValue,
		Phase: notify.PhaseExit,
	}
	if err := hook.Notify(context.Background(), event); err != nil {
		t.Fatalf("notify: %v", err)
	}
	record := sink.records[0]
	if record.Verb != auditsink.VerbExited {
		t.Fatalf("expected exit verb, got %s", record.Verb)
	}
	if record.Data["value"] != "<no value>" {
		t.Fatalf("expected no-value marker, got %v", record.Data["value"])
	}
	if record.ActorID != uuid.Nil {
		t.Fatalf("expected nil actor for unset ActorID, got %s", record.ActorID)
	}
}

func TestHookSkipsWithoutSinkOrKey(t *testing.T) {
	hook := auditsink.Hook{}
	if err := hook.Notify(context.Background(), notify.Event{Key: "K"}); err != nil {
		t.Fatalf("nil sink should be a no-op, got %v", err)
	}

	sink := &recordingSink{}
	hook = auditsink.Hook{Sink: sink}
	if err := hook.Notify(context.Background(), notify.Event{}); err != nil {
		t.Fatalf("empty key should be a no-op, got %v", err)
	}
	if len(sink.records) != 0 {
		t.Fatalf("expected no records, got %d", len(sink.records))
	}
}

func TestHookListenerAdapts(t *testing.T) {
	sink := &recordingSink{}
	hook := auditsink.Hook{Sink: sink}
	listener := hook.Listener(context.Background())

	if err := listener(notify.Event{Key: "K", Value: 1, Phase: notify.PhaseEnter}); err != nil {
		t.Fatalf("listener: %v", err)
	}
	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
}
