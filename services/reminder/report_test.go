package reminder

import (
	"testing"
	"time"
)

func TestReportCounts(t *testing.T) {
	w := CurrentWindow(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), time.Minute)
	r := NewCycleReport(w)

	r.Record("rem-1", "u1", Delivered)
	r.Record("rem-1", "u2", Delivered)
	r.Record("rem-1", "u3", SkippedMissingEndpoint)
	r.Record("rem-2", "u4", FailedTransiently)

	if got := r.Count(Delivered); got != 2 {
		t.Fatalf("expected 2 delivered, got %d", got)
	}
	if got := r.Count(SkippedMissingEndpoint); got != 1 {
		t.Fatalf("expected 1 skipped, got %d", got)
	}
	if got := r.Count(FailedPermanently); got != 0 {
		t.Fatalf("expected 0 permanent failures, got %d", got)
	}
}

func TestOutcomeStrings(t *testing.T) {
	cases := map[DeliveryOutcome]string{
		Delivered:              "delivered",
		SkippedMissingEndpoint: "skipped-missing-endpoint",
		FailedTransiently:      "failed-transiently",
		FailedPermanently:      "failed-permanently",
	}
	for outcome, want := range cases {
		if got := outcome.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
