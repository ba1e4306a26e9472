package reminder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"grocli/database"
	listRepo "grocli/database/repository/list"
	reminderRepo "grocli/database/repository/reminder"
	tokenRepo "grocli/database/repository/token"
	"grocli/models"
	"grocli/services/notification"

	"go.uber.org/zap"
)

// Policy controls the open behavioral choices of the pipeline.
type Policy struct {
	// RetryUndelivered leaves a recipient unmarked when every one of their
	// registered tokens failed delivery, so the next cycle tries again.
	// When false, an attempt on every token on file counts as notified
	// regardless of outcome, matching the original deployment. A recipient
	// with no tokens at all is marked notified under either setting.
	RetryUndelivered bool
}

// Dispatcher runs the scheduled reminder dispatch cycle: query the due
// window, expand each reminder's audience, fan pushes out per token, and
// commit the notified/deactivated bookkeeping in one batch.
type Dispatcher struct {
	Reminders reminderRepo.ReminderRepository
	Lists     listRepo.ListRepository
	Tokens    tokenRepo.TokenRepository
	Messenger notification.Messenger
	Policy    Policy
	Lookahead time.Duration
	Now       func() time.Time
	Logger    *zap.Logger
}

// RunCycle executes one dispatch cycle. Query and commit failures
// propagate and fail the invocation; everything in between is recovered
// locally and accounted for in the returned report.
func (d *Dispatcher) RunCycle(ctx context.Context) (*CycleReport, error) {
	now := time.Now()
	if d.Now != nil {
		now = d.Now()
	}
	window := CurrentWindow(now, d.Lookahead)
	report := NewCycleReport(window)

	due, err := d.Reminders.QueryDue(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("dispatch cycle %s: %w", window, err)
	}
	report.RemindersDue = len(due)

	batch := d.Reminders.NewBatch()
	for i := range due {
		d.processReminder(ctx, &due[i], batch, report)
	}

	// State changes land only after every push attempt this cycle has
	// settled; pushes themselves are best-effort side effects outside
	// the batch.
	if err := batch.Commit(ctx); err != nil {
		return report, fmt.Errorf("dispatch cycle %s: %w", window, err)
	}

	d.Logger.Info("reminder dispatch cycle complete", report.Fields()...)
	return report, nil
}

func (d *Dispatcher) processReminder(ctx context.Context, rem *models.Reminder, batch reminderRepo.MutationBatch, report *CycleReport) {
	list, err := d.Lists.GetByID(ctx, rem.ListID)
	if errors.Is(err, database.ErrNotFound) {
		// A dangling list reference is stale data, not an error to propagate.
		d.Logger.Warn("reminder references missing list, skipping",
			zap.String("reminderId", rem.ID),
			zap.String("listId", rem.ListID))
		report.DanglingLists++
		return
	}
	if err != nil {
		d.Logger.Error("list fetch failed, deferring reminder to next cycle",
			zap.String("reminderId", rem.ID),
			zap.String("listId", rem.ListID),
			zap.Error(err))
		report.ListErrors++
		return
	}

	if rem.Audience != models.AudienceSelf && rem.Audience != models.AudienceAllParticipants {
		d.Logger.Warn("reminder has unknown audience policy, skipping",
			zap.String("reminderId", rem.ID),
			zap.String("audience", string(rem.Audience)))
		return
	}

	targets := pendingTargets(rem, list)
	var newlyNotified []string
	for _, uid := range targets {
		outcome, err := d.notifyRecipient(ctx, rem, list, uid)
		if err != nil {
			// No attempt was made against any endpoint, so the recipient
			// stays unmarked and the reminder active for the next cycle,
			// whatever the policy says about failed sends.
			d.Logger.Error("token lookup failed, deferring recipient to next cycle",
				zap.String("reminderId", rem.ID),
				zap.String("userId", uid),
				zap.Error(err))
			report.TokenErrors++
			continue
		}
		report.Record(rem.ID, uid, outcome)

		undelivered := outcome == FailedTransiently || outcome == FailedPermanently
		if undelivered && d.Policy.RetryUndelivered {
			continue
		}
		newlyNotified = append(newlyNotified, uid)
	}

	batch.MarkNotified(rem.ID, newlyNotified)
	if audienceCovered(rem, list, newlyNotified) {
		batch.Deactivate(rem.ID)
		report.Deactivated++
	}
}

// pendingTargets expands the reminder's audience policy into concrete user
// IDs and subtracts recipients already notified in earlier cycles. The
// result is sorted so dispatch order is deterministic.
func pendingTargets(rem *models.Reminder, list *models.List) []string {
	var audience []string
	switch rem.Audience {
	case models.AudienceSelf:
		audience = []string{rem.CreatedBy}
	case models.AudienceAllParticipants:
		audience = list.ParticipantIDs
	}

	var pending []string
	seen := make(map[string]bool)
	for _, uid := range audience {
		if uid == "" || seen[uid] || rem.AlreadyNotified(uid) {
			continue
		}
		seen[uid] = true
		pending = append(pending, uid)
	}
	sort.Strings(pending)
	return pending
}

// notifyRecipient resolves the recipient's registered tokens and dispatches
// one push per token. Token sends run concurrently and are awaited jointly
// before the outcome is classified. A failed token lookup returns an error
// rather than an outcome: no attempt was made yet.
func (d *Dispatcher) notifyRecipient(ctx context.Context, rem *models.Reminder, list *models.List, userID string) (DeliveryOutcome, error) {
	tokens, err := d.Tokens.Tokens(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("token lookup for user %s: %w", userID, err)
	}
	if len(tokens) == 0 {
		return SkippedMissingEndpoint, nil
	}

	msg := buildPush(rem, list)

	results := make([]error, len(tokens))
	var wg sync.WaitGroup
	for i, tok := range tokens {
		wg.Add(1)
		go func(i int, tok string) {
			defer wg.Done()
			m := msg
			m.Token = tok
			results[i] = d.Messenger.Send(ctx, m)
		}(i, tok)
	}
	wg.Wait()

	delivered := false
	transient := false
	for i, sendErr := range results {
		switch {
		case sendErr == nil:
			delivered = true
		case errors.Is(sendErr, notification.ErrUnregisteredToken):
			// Self-healing cleanup: drop just this token, never retry it.
			if rmErr := d.Tokens.Remove(ctx, userID, tokens[i]); rmErr != nil {
				d.Logger.Error("failed to remove unregistered token",
					zap.String("userId", userID),
					zap.Error(rmErr))
			} else {
				d.Logger.Info("removed unregistered token",
					zap.String("userId", userID))
			}
		default:
			transient = true
			d.Logger.Warn("push delivery failed",
				zap.String("reminderId", rem.ID),
				zap.String("userId", userID),
				zap.Error(sendErr))
		}
	}

	switch {
	case delivered:
		return Delivered, nil
	case transient:
		return FailedTransiently, nil
	default:
		return FailedPermanently, nil
	}
}

// buildPush assembles the notification carried to every token of one
// recipient. The token is filled in per send.
func buildPush(rem *models.Reminder, list *models.List) models.PushMessage {
	body := rem.Description
	if body == "" {
		body = fmt.Sprintf("Reminder for %s", list.Name)
	}
	return models.PushMessage{
		Title: rem.Title,
		Body:  body,
		Data: map[string]string{
			"type":       models.NotificationTypeReminderDue,
			"reminderId": rem.ID,
			"listId":     rem.ListID,
		},
	}
}

// audienceCovered reports whether, after this cycle's marks, every member
// of the reminder's resolved audience has been notified.
func audienceCovered(rem *models.Reminder, list *models.List, newlyNotified []string) bool {
	covered := make(map[string]bool, len(rem.NotifiedUsers)+len(newlyNotified))
	for _, uid := range rem.NotifiedUsers {
		covered[uid] = true
	}
	for _, uid := range newlyNotified {
		covered[uid] = true
	}

	switch rem.Audience {
	case models.AudienceSelf:
		return covered[rem.CreatedBy]
	case models.AudienceAllParticipants:
		return len(covered) >= len(list.ParticipantIDs)
	default:
		return false
	}
}
