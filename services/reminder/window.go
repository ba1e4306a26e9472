package reminder

import (
	"fmt"
	"time"
)

// Window is the half-open dispatch interval [Start, End). Reminders whose
// scheduled time falls inside the window are due in the current cycle.
type Window struct {
	Start time.Time
	End   time.Time
}

// CurrentWindow computes the dispatch interval beginning at now. The
// lookahead equals the job's execution period so that, given a fixed
// polling cadence, every reminder becomes due in exactly one window.
func CurrentWindow(now time.Time, lookahead time.Duration) Window {
	return Window{Start: now, End: now.Add(lookahead)}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
