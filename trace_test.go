package settings

import (
	"testing"
)

func TestTraceFindsAssignmentDepth(t *testing.T) {
	s := newConfigured(t, map[string]any{"K": "root"})

	override := s.Override(map[string]any{"K": "override"})
	if err := override.Enable(); err != nil {
		t.Fatalf("enable: %v", err)
	}
	defer func() {
		if err := override.Disable(); err != nil {
			t.Fatalf("disable: %v", err)
		}
	}()

	trace, err := s.Trace("K")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if trace.Key != "K" {
		t.Fatalf("unexpected key: %s", trace.Key)
	}
	// Active override holder, configured holder, then the root source.
	if len(trace.Layers) != 3 {
		t.Fatalf("expected 3 layers, got %#v", trace.Layers)
	}
	top := trace.Layers[0]
	if !top.Assigned || !top.Found || top.Value != "override" {
		t.Fatalf("unexpected top layer: %#v", top)
	}
	if trace.Layers[1].Found {
		t.Fatalf("shadowed layer should not resolve: %#v", trace.Layers[1])
	}
	if !trace.Layers[2].Root || trace.Layers[2].Found {
		t.Fatalf("unexpected root layer: %#v", trace.Layers[2])
	}
}

func TestTraceRecordsDeletion(t *testing.T) {
	s := newConfigured(t, map[string]any{"K": "root"})
	if err := s.Delete("K"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	trace, err := s.Trace("K")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	top := trace.Layers[0]
	if !top.Deleted || !top.Found {
		t.Fatalf("expected deletion to terminate resolution: %#v", top)
	}
	if trace.Layers[1].Found {
		t.Fatalf("root should not resolve past a deletion: %#v", trace.Layers[1])
	}
}

func TestTraceRootResolution(t *testing.T) {
	s := newConfigured(t, map[string]any{"K": "root"})

	trace, err := s.Trace("K")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if len(trace.Layers) != 2 {
		t.Fatalf("expected holder plus root, got %#v", trace.Layers)
	}
	root := trace.Layers[1]
	if !root.Root || !root.Found || root.Value != "root" {
		t.Fatalf("unexpected root provenance: %#v", root)
	}
}

func TestTraceJSONRoundTrip(t *testing.T) {
	s := newConfigured(t, map[string]any{"K": "root"})
	trace, err := s.Trace("K")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	payload, err := trace.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	decoded, err := TraceFromJSON(payload)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if decoded.Key != trace.Key || len(decoded.Layers) != len(trace.Layers) {
		t.Fatalf("round trip mismatch: %#v vs %#v", decoded, trace)
	}
}
