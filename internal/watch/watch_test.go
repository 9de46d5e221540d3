package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "A.java")
	if err := os.WriteFile(path, []byte("class A {}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := New(path, Options{}); err == nil {
		t.Fatal("expected error for non-directory root")
	}
	if _, err := New(filepath.Join(t.TempDir(), "missing"), Options{}); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestRunReportsJavaChanges(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "src")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	w, err := New(root, Options{Debounce: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	batches := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(paths []string) { batches <- paths })
	}()

	java := filepath.Join(sub, "Service.java")
	if err := os.WriteFile(filepath.Join(sub, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	if err := os.WriteFile(java, []byte("class Service {}"), 0o644); err != nil {
		t.Fatalf("write java: %v", err)
	}

	select {
	case batch := <-batches:
		if len(batch) != 1 || batch[0] != java {
			t.Fatalf("unexpected batch: %v", batch)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for change")
	}

	cancel()
	if err := <-done; err != context.Canceled && err != context.DeadlineExceeded {
		t.Fatalf("unexpected run error: %v", err)
	}
}
