package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func loadedModel(t *testing.T, items []Item, errs <-chan error) *browseModel {
	t.Helper()
	m := NewBrowseModel("loglens", func() ([]Item, error) { return items, nil }, errs).(*browseModel)
	msg := m.runLoad()()
	model, _ := m.Update(msg)
	return model.(*browseModel)
}

func TestBrowseLoadsItems(t *testing.T) {
	m := loadedModel(t, []Item{
		{Location: "A.java:3:20", Label: "DataDog", Link: "https://x/logs?query=a"},
		{Location: "A.java:9:21", Label: "DataDog", Link: "https://x/logs?query=b"},
	}, nil)
	if m.loading || len(m.items) != 2 {
		t.Fatalf("unexpected state: loading=%v items=%d", m.loading, len(m.items))
	}
	view := m.View()
	if !strings.Contains(view, "A.java:3:20") || !strings.Contains(view, "2 annotations") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestBrowseMovesAndActivates(t *testing.T) {
	var opened []string
	items := []Item{
		{Location: "A.java:1:1", Link: "a", Activate: func() { opened = append(opened, "a") }},
		{Location: "A.java:2:1", Link: "b", Activate: func() { opened = append(opened, "b") }},
	}
	m := loadedModel(t, items, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected activation command")
	}
	m.Update(cmd())
	if len(opened) != 1 || opened[0] != "b" {
		t.Fatalf("opened = %v", opened)
	}
	if !strings.Contains(m.status, "opened b") {
		t.Fatalf("status = %q", m.status)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
}

func TestBrowseShowsActivationErrors(t *testing.T) {
	errs := make(chan error, 1)
	m := loadedModel(t, nil, errs)
	errs <- errors.New("launch xdg-open: not found")
	_, cmd := m.Update(m.listenForError()())
	if !m.failed || !strings.Contains(m.View(), "xdg-open") {
		t.Fatalf("expected error in status, got %q", m.status)
	}
	if cmd == nil {
		t.Fatal("expected listener to be re-armed")
	}
	close(errs)
	m.Update(cmd())
	if m.errs != nil {
		t.Fatal("closed channel should be dropped")
	}
}

func TestBrowseLoadError(t *testing.T) {
	m := NewBrowseModel("loglens", func() ([]Item, error) { return nil, errors.New("boom") }, nil).(*browseModel)
	m.Update(m.runLoad()())
	if !m.failed || !strings.Contains(m.View(), "boom") || !strings.Contains(m.View(), "no logging calls found") {
		t.Fatalf("unexpected view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefgh", 6); got != "abc..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("日本語テキスト", 7); got != "日本..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("truncate = %q", got)
	}
}
