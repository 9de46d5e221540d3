package lsp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf16"
)

const sampleJava = `package demo;

class Service {
    void run() {
        LOGGER.info("Remote job complete");
        String s = "é🙂"; LOGGER.error("disk full");
    }
}
`

type session struct {
	t   *testing.T
	buf bytes.Buffer
	id  int
}

func newSession(t *testing.T) *session {
	return &session{t: t}
}

func (s *session) request(method string, params any) int {
	s.t.Helper()
	s.id++
	s.write(map[string]any{"jsonrpc": "2.0", "id": s.id, "method": method, "params": params})
	return s.id
}

func (s *session) notify(method string, params any) {
	s.t.Helper()
	s.write(map[string]any{"jsonrpc": "2.0", "method": method, "params": params})
}

func (s *session) write(msg any) {
	s.t.Helper()
	payload, err := json.Marshal(msg)
	if err != nil {
		s.t.Fatalf("marshal: %v", err)
	}
	if err := writeMessage(&s.buf, payload); err != nil {
		s.t.Fatalf("write: %v", err)
	}
}

func readAll(t *testing.T, out []byte) []rpcMessage {
	t.Helper()
	reader := bufio.NewReader(bytes.NewReader(out))
	var msgs []rpcMessage
	for {
		payload, err := readMessage(reader)
		if err != nil {
			break
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("decode: %v", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func responseFor(t *testing.T, msgs []rpcMessage, id int) rpcMessage {
	t.Helper()
	want := []byte(strings.TrimSpace(jsonInt(id)))
	for _, m := range msgs {
		if bytes.Equal(m.ID, want) && m.Method == "" {
			return m
		}
	}
	t.Fatalf("no response for id %d", id)
	return rpcMessage{}
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func positionForOffsetUTF16(text string, offset int) position {
	offset = min(max(offset, 0), len(text))
	line := strings.Count(text[:offset], "\n")
	lineStart := strings.LastIndex(text[:offset], "\n") + 1
	units := 0
	for _, r := range text[lineStart:offset] {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		units += n
	}
	return position{Line: line, Character: units}
}

var fullRange = lspRange{
	Start: position{Line: 0, Character: 0},
	End:   position{Line: 200, Character: 0},
}
