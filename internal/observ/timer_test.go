package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "3 files")
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 1 || report.Phases[0].Name != "parse" || report.Phases[0].Note != "3 files" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.TotalMS < 0 {
		t.Fatalf("negative total: %v", report.TotalMS)
	}
	summary := tm.Summary()
	if !strings.Contains(summary, "parse") || !strings.Contains(summary, "// 3 files") || !strings.Contains(summary, "total") {
		t.Fatalf("unexpected summary:\n%s", summary)
	}
}

func TestTimerEmpty(t *testing.T) {
	if r := NewTimer().Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("expected empty report, got %+v", r)
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.End(tm.Begin("file"), "")
		}()
	}
	wg.Wait()
	if got := len(tm.Report().Phases); got != 16 {
		t.Fatalf("expected 16 phases, got %d", got)
	}
}
