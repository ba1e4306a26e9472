package reminder

import "go.uber.org/zap"

// DeliveryOutcome is the per-recipient result of a dispatch attempt.
type DeliveryOutcome int

const (
	// Delivered means at least one of the recipient's tokens accepted the push.
	Delivered DeliveryOutcome = iota
	// SkippedMissingEndpoint means the recipient has no registered tokens.
	SkippedMissingEndpoint
	// FailedTransiently means every send failed and at least one failure
	// was not a permanent token invalidation.
	FailedTransiently
	// FailedPermanently means every one of the recipient's tokens was
	// reported unregistered and has been removed.
	FailedPermanently
)

func (o DeliveryOutcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case SkippedMissingEndpoint:
		return "skipped-missing-endpoint"
	case FailedTransiently:
		return "failed-transiently"
	case FailedPermanently:
		return "failed-permanently"
	default:
		return "unknown"
	}
}

// RecipientResult records the outcome of one recipient in one cycle.
type RecipientResult struct {
	ReminderID string
	UserID     string
	Outcome    DeliveryOutcome
}

// CycleReport aggregates everything a dispatch cycle did, so outcomes are
// inspectable instead of vanishing into per-item logs.
type CycleReport struct {
	Window        Window
	RemindersDue  int
	DanglingLists int
	ListErrors    int
	TokenErrors   int
	Deactivated   int
	Results       []RecipientResult
}

func NewCycleReport(w Window) *CycleReport {
	return &CycleReport{Window: w}
}

// Record appends a recipient outcome.
func (r *CycleReport) Record(reminderID, userID string, outcome DeliveryOutcome) {
	r.Results = append(r.Results, RecipientResult{
		ReminderID: reminderID,
		UserID:     userID,
		Outcome:    outcome,
	})
}

// Count returns the number of recipients with the given outcome.
func (r *CycleReport) Count(outcome DeliveryOutcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Fields renders the report as structured log fields for the
// once-per-cycle summary line.
func (r *CycleReport) Fields() []zap.Field {
	return []zap.Field{
		zap.String("window", r.Window.String()),
		zap.Int("remindersDue", r.RemindersDue),
		zap.Int("delivered", r.Count(Delivered)),
		zap.Int("skippedMissingEndpoint", r.Count(SkippedMissingEndpoint)),
		zap.Int("failedTransiently", r.Count(FailedTransiently)),
		zap.Int("failedPermanently", r.Count(FailedPermanently)),
		zap.Int("danglingLists", r.DanglingLists),
		zap.Int("listErrors", r.ListErrors),
		zap.Int("tokenErrors", r.TokenErrors),
		zap.Int("deactivated", r.Deactivated),
	}
}
