package hintfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"loglens/internal/driver"
)

func sampleResult(base string) *driver.Result {
	return &driver.Result{Files: []driver.FileResult{
		{
			Path: filepath.Join(base, "src", "Service.java"),
			Annotations: []driver.Annotation{
				{Offset: 70, Line: 5, Col: 20, Label: "DataDog", Link: "https://example.test/logs?query=disk%20full"},
				{Offset: 120, Line: 12, Col: 21, Label: "DataDog", Link: "https://example.test/logs?query=ok"},
			},
		},
		{Path: filepath.Join(base, "Broken.java"), Err: errors.New("failed to parse")},
	}}
}

func TestPrettyAlignsLocations(t *testing.T) {
	base := t.TempDir()
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleResult(base), PrettyOpts{BaseDir: base, ShowErrors: true}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", buf.String())
	}
	if lines[0] != "src/Service.java:5:20   DataDog  https://example.test/logs?query=disk%20full" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "src/Service.java:12:21  DataDog  https://example.test/logs?query=ok" {
		t.Fatalf("line 1 = %q", lines[1])
	}
	if lines[2] != "Broken.java: error: failed to parse" {
		t.Fatalf("line 2 = %q", lines[2])
	}
}

func TestPrettyTruncatesAndHidesErrors(t *testing.T) {
	base := t.TempDir()
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleResult(base), PrettyOpts{BaseDir: base, Width: 30}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if w := len([]rune(line)); w > 30 {
			t.Fatalf("line wider than 30 cells: %q", line)
		}
		if strings.Contains(line, "error") {
			t.Fatalf("errors should be hidden: %q", line)
		}
	}
}

func TestPrettyColor(t *testing.T) {
	base := t.TempDir()
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleResult(base), PrettyOpts{BaseDir: base, Color: true}); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	base := t.TempDir()
	var buf bytes.Buffer
	if err := JSON(&buf, sampleResult(base), base, PathModeBasename); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got []Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 3 || got[0].Path != "Service.java" || got[0].Line != 5 || got[2].Error == "" {
		t.Fatalf("unexpected records: %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatal("expected indented output")
	}
}

func TestJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil, "", PathModeAuto); err != nil {
		t.Fatalf("json: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("expected [], got %q", buf.String())
	}
}

func TestMsgPack(t *testing.T) {
	base := t.TempDir()
	var buf bytes.Buffer
	if err := MsgPack(&buf, sampleResult(base), base, PathModeRelative); err != nil {
		t.Fatalf("msgpack: %v", err)
	}
	got, err := DecodeMsgPack(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 || got[1].Link != "https://example.test/logs?query=ok" || got[0].Path != "src/Service.java" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatPretty, "JSON": FormatJSON, "msgpack": FormatMsgPack} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("sarif"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := ParsePathMode("weird"); err == nil {
		t.Fatal("expected error for unknown path mode")
	}
}
