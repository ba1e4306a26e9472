package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"grocli/database"
	"grocli/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreReminderRepo implements ReminderRepository on Firestore.
type FirestoreReminderRepo struct {
	client *firestore.Client
}

func NewFirestoreReminderRepo(client *firestore.Client) *FirestoreReminderRepo {
	return &FirestoreReminderRepo{client: client}
}

func (r *FirestoreReminderRepo) QueryDue(ctx context.Context, from, to time.Time) ([]models.Reminder, error) {
	iter := r.client.Collection(database.CollReminders).
		Where("isActive", "==", true).
		Where("scheduledTime", ">=", from).
		Where("scheduledTime", "<", to).
		Documents(ctx)
	defer iter.Stop()

	var reminders []models.Reminder
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reminder query failed: %w", err)
		}
		var rem models.Reminder
		if err := doc.DataTo(&rem); err != nil {
			return nil, fmt.Errorf("reminder %s: decode failed: %w", doc.Ref.ID, err)
		}
		rem.ID = doc.Ref.ID
		reminders = append(reminders, rem)
	}
	return reminders, nil
}

func (r *FirestoreReminderRepo) NewBatch() MutationBatch {
	return &firestoreBatch{client: r.client, batch: r.client.Batch()}
}

type firestoreBatch struct {
	client *firestore.Client
	batch  *firestore.WriteBatch
	queued int
}

func (b *firestoreBatch) MarkNotified(reminderID string, userIDs []string) {
	if len(userIDs) == 0 {
		return
	}
	elems := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		elems[i] = id
	}
	ref := b.client.Collection(database.CollReminders).Doc(reminderID)
	b.batch.Update(ref, []firestore.Update{
		{Path: "notifiedUsers", Value: firestore.ArrayUnion(elems...)},
	})
	b.queued++
}

func (b *firestoreBatch) Deactivate(reminderID string) {
	ref := b.client.Collection(database.CollReminders).Doc(reminderID)
	b.batch.Update(ref, []firestore.Update{
		{Path: "isActive", Value: false},
	})
	b.queued++
}

func (b *firestoreBatch) Commit(ctx context.Context) error {
	// Firestore rejects empty batch commits.
	if b.queued == 0 {
		return nil
	}
	if _, err := b.batch.Commit(ctx); err != nil {
		return fmt.Errorf("reminder batch commit failed: %w", err)
	}
	return nil
}
