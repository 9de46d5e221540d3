package lsp

import (
	"testing"
	"unicode/utf8"

	"loglens/internal/source"
)

func TestApplyChanges(t *testing.T) {
	text := "one\ntwo\n"
	got := applyChanges(text, []textDocumentContentChangeEvent{
		{Range: &lspRange{Start: position{Line: 1, Character: 0}, End: position{Line: 1, Character: 3}}, Text: "TWO"},
		{Range: &lspRange{Start: position{Line: 0, Character: 0}, End: position{Line: 0, Character: 0}}, Text: "// "},
	})
	if got != "// one\nTWO\n" {
		t.Fatalf("applyChanges = %q", got)
	}
	if got := applyChanges(text, []textDocumentContentChangeEvent{{Text: "full"}}); got != "full" {
		t.Fatalf("full replace = %q", got)
	}
	if got := applyChanges(text, nil); got != text {
		t.Fatalf("no-op = %q", got)
	}
}

func TestOffsetForPositionUTF16(t *testing.T) {
	text := "a🙂b\nc"
	cases := []struct {
		pos  position
		want int
	}{
		{position{0, 0}, 0},
		{position{0, 1}, 1},
		{position{0, 2}, 1}, // inside the surrogate pair
		{position{0, 3}, 5},
		{position{0, 9}, 6},
		{position{1, 1}, 8},
		{position{5, 0}, len(text)},
	}
	for _, tc := range cases {
		if got := offsetForPosition(text, tc.pos); got != tc.want {
			t.Errorf("offsetForPosition(%+v) = %d, want %d", tc.pos, got, tc.want)
		}
	}
}

func TestFilePositionRoundTrip(t *testing.T) {
	text := "x = \"é🙂\";\nLOGGER.info(\"y\")\n"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("A.java", []byte(text)))

	for off := range len(text) + 1 {
		if off < len(text) && !utf8.RuneStart(text[off]) {
			continue
		}
		pos := positionForOffsetInFile(file, safeUint32(off))
		if want := positionForOffsetUTF16(text, off); pos != want {
			t.Fatalf("position(%d) = %+v, want %+v", off, pos, want)
		}
		if back := offsetForPositionInFile(file, pos); int(back) != off {
			t.Fatalf("round trip %d -> %+v -> %d", off, pos, back)
		}
	}
	if got := positionForOffsetInFile(file, 1<<30); got.Line != 2 || got.Character != 0 {
		t.Fatalf("clamped position = %+v", got)
	}
}

func TestCanonicalURI(t *testing.T) {
	if got := canonicalURI("file:///tmp/a%20b/A.java"); got != "file:///tmp/a%20b/A.java" {
		t.Fatalf("canonicalURI = %q", got)
	}
	if got := canonicalURI("untitled:Untitled-1"); got != "untitled:Untitled-1" {
		t.Fatalf("non-file URI changed: %q", got)
	}
	if got := uriToPath(pathToURI("/tmp/x y/A.java")); got != "/tmp/x y/A.java" {
		t.Fatalf("uri round trip = %q", got)
	}
}
