package reminderRepo

import (
	"context"
	"time"

	"grocli/models"
)

// ReminderRepository defines the narrow query/batch capabilities the
// dispatch pipeline needs from the document store.
type ReminderRepository interface {
	// QueryDue returns all active reminders whose scheduled time falls in
	// the half-open interval [from, to). Order is unspecified.
	QueryDue(ctx context.Context, from, to time.Time) ([]models.Reminder, error)
	// NewBatch returns an empty mutation batch. Mutations queued on it are
	// applied atomically on Commit.
	NewBatch() MutationBatch
}

// MutationBatch accumulates reminder state changes for a dispatch cycle.
type MutationBatch interface {
	// MarkNotified appends the given user IDs to a reminder's notifiedUsers set.
	MarkNotified(reminderID string, userIDs []string)
	// Deactivate clears a reminder's active flag.
	Deactivate(reminderID string)
	// Commit applies all queued mutations in one atomic write.
	Commit(ctx context.Context) error
}
