package lsp

import (
	"context"
	"strings"
	"testing"

	"loglens/internal/browser"
	"loglens/internal/hint"
)

func TestInlayHintsForJava(t *testing.T) {
	var opened []string
	engine := hint.New(hint.Options{Opener: browser.OpenerFunc(func(u string) error {
		opened = append(opened, u)
		return nil
	})})
	uri := "file:///work/Service.java"
	hints, table, err := buildInlayHints(context.Background(), engine, hint.DefaultSettings(), uri, sampleJava, &fullRange)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(hints) != 2 || len(table) != 2 {
		t.Fatalf("expected 2 hints and 2 activations, got %d/%d", len(hints), len(table))
	}

	first := hints[0]
	if want := positionForOffsetUTF16(sampleJava, strings.Index(sampleJava, `("Remote`)); first.Position != want {
		t.Fatalf("first position = %+v, want %+v", first.Position, want)
	}
	if !first.PaddingLeft || len(first.Label) != 1 {
		t.Fatalf("unexpected hint shape: %+v", first)
	}
	part := first.Label[0]
	if part.Value != hint.DefaultLabel || !strings.Contains(part.Tooltip, "query=Remote%20job%20complete") {
		t.Fatalf("unexpected label part: %+v", part)
	}
	if part.Command == nil || part.Command.Command != OpenDashboardCommand || part.Command.Arguments[0] != uri || part.Command.Arguments[1] != 0 {
		t.Fatalf("unexpected command: %+v", part.Command)
	}

	// The second call sits after non-BMP text on the same line.
	if want := positionForOffsetUTF16(sampleJava, strings.Index(sampleJava, `("disk`)); hints[1].Position != want {
		t.Fatalf("second position = %+v, want %+v", hints[1].Position, want)
	}

	table[1]()
	if len(opened) != 1 || !strings.Contains(opened[0], "query=disk%20full") {
		t.Fatalf("opened = %v", opened)
	}
}

func TestInlayHintsRangeFilter(t *testing.T) {
	engine := hint.New(hint.Options{Opener: browser.OpenerFunc(func(string) error { return nil })})
	line := positionForOffsetUTF16(sampleJava, strings.Index(sampleJava, `LOGGER.error`)).Line
	rng := lspRange{Start: position{Line: line}, End: position{Line: line + 1}}
	hints, table, err := buildInlayHints(context.Background(), engine, hint.DefaultSettings(), "file:///w/A.java", sampleJava, &rng)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(hints) != 1 || len(table) != 2 {
		t.Fatalf("expected 1 hint of 2 annotations, got %d/%d", len(hints), len(table))
	}
	if hints[0].Label[0].Command.Arguments[1] != 1 {
		t.Fatalf("filtered hint must keep its table index, got %v", hints[0].Label[0].Command.Arguments)
	}
}

func TestInlayHintsDisabled(t *testing.T) {
	engine := hint.New(hint.Options{})
	hints, table, err := buildInlayHints(context.Background(), engine, hint.Settings{}, "file:///w/A.java", sampleJava, &fullRange)
	if err != nil || len(hints) != 0 || table != nil {
		t.Fatalf("disabled settings produced %v %v %v", hints, table, err)
	}
}

func TestInlayHintsNilAndEmptyRange(t *testing.T) {
	engine := hint.New(hint.Options{Opener: browser.OpenerFunc(func(string) error { return nil })})
	uri := "file:///w/A.java"

	all, _, err := buildInlayHints(context.Background(), engine, hint.DefaultSettings(), uri, sampleJava, nil)
	if err != nil || len(all) != 2 {
		t.Fatalf("nil range: got %d hints, err %v", len(all), err)
	}

	empty := lspRange{}
	hints, table, err := buildInlayHints(context.Background(), engine, hint.DefaultSettings(), uri, sampleJava, &empty)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(hints) != 0 || len(table) != 2 {
		t.Fatalf("empty range at file start: got %d hints of %d annotations", len(hints), len(table))
	}
}
