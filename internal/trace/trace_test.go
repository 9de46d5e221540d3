package trace

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltersScopes(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(KindPoint, tc.scope); got != tc.want {
			t.Errorf("%s.ShouldEmit(point, %s) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
	if !LevelError.ShouldEmit(KindError, ScopeNode) {
		t.Error("error events must pass LevelError")
	}
}

func TestStreamTracerWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	span := Begin(tr, ScopeFile, "file:Main.java", 0)
	Point(tr, ScopeNode, "annotate", "skipped at detail", span.ID())
	span.WithExtra("hints", "2").End("ok")

	out := buf.String()
	if !strings.Contains(out, "→ file:Main.java") {
		t.Fatalf("missing begin event: %q", out)
	}
	if !strings.Contains(out, "← file:Main.java (ok) {hints=2}") {
		t.Fatalf("missing end event: %q", out)
	}
	if strings.Contains(out, "annotate") {
		t.Fatalf("node point leaked at detail level: %q", out)
	}
}

func TestRingTracerWrapsAndDumps(t *testing.T) {
	ring := NewRingTracer(2, LevelDebug)
	Point(ring, ScopeNode, "one", "", 0)
	Point(ring, ScopeNode, "two", "", 0)
	Point(ring, ScopeNode, "three", "", 0)

	events := ring.Snapshot()
	if len(events) != 2 || events[0].Name != "two" || events[1].Name != "three" {
		t.Fatalf("unexpected snapshot: %+v", events)
	}
	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatNDJSON); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("expected two ndjson lines, got %q", buf.String())
	}
}

func TestMultiTracerExposesRing(t *testing.T) {
	var buf bytes.Buffer
	multi := NewMultiTracer(LevelError, NewStreamTracer(&buf, LevelError, FormatText), NewRingTracer(8, LevelError))
	Error(multi, ScopeNode, "open", errors.New("no browser"))

	ring, ok := Ring(multi)
	if !ok {
		t.Fatal("expected ring inside multi tracer")
	}
	if got := ring.Snapshot(); len(got) != 1 || got[0].Detail != "no browser" {
		t.Fatalf("unexpected ring contents: %+v", got)
	}
	if !strings.Contains(buf.String(), "! open (no browser)") {
		t.Fatalf("unexpected stream output: %q", buf.String())
	}
}

func TestNewOffReturnsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Fatal("expected disabled tracer")
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
