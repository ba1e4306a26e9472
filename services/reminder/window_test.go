package reminder

import (
	"testing"
	"time"
)

func TestCurrentWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	w := CurrentWindow(now, time.Minute)

	if !w.Start.Equal(now) {
		t.Fatalf("expected window start %v, got %v", now, w.Start)
	}
	if !w.End.Equal(now.Add(time.Minute)) {
		t.Fatalf("expected window end %v, got %v", now.Add(time.Minute), w.End)
	}
}

func TestWindowContainsHalfOpen(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	w := CurrentWindow(now, time.Minute)

	if !w.Contains(now) {
		t.Fatal("window must include its start")
	}
	if !w.Contains(now.Add(59 * time.Second)) {
		t.Fatal("window must include instants before its end")
	}
	if w.Contains(now.Add(time.Minute)) {
		t.Fatal("window must exclude its end")
	}
	if w.Contains(now.Add(-time.Second)) {
		t.Fatal("window must exclude instants before its start")
	}
}
