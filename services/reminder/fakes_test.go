package reminder

import (
	"context"
	"sync"
	"time"

	"grocli/database"
	reminderRepo "grocli/database/repository/reminder"
	"grocli/models"
	"grocli/services/notification"
)

type fakeReminderRepo struct {
	due      []models.Reminder
	queryErr error
	batch    *fakeBatch
}

func (f *fakeReminderRepo) QueryDue(ctx context.Context, from, to time.Time) ([]models.Reminder, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.due, nil
}

func (f *fakeReminderRepo) NewBatch() reminderRepo.MutationBatch {
	if f.batch == nil {
		f.batch = &fakeBatch{marked: make(map[string][]string)}
	}
	return f.batch
}

type fakeBatch struct {
	marked      map[string][]string
	deactivated []string
	committed   bool
	commitErr   error
}

func (b *fakeBatch) MarkNotified(reminderID string, userIDs []string) {
	if len(userIDs) == 0 {
		return
	}
	b.marked[reminderID] = append(b.marked[reminderID], userIDs...)
}

func (b *fakeBatch) Deactivate(reminderID string) {
	b.deactivated = append(b.deactivated, reminderID)
}

func (b *fakeBatch) Commit(ctx context.Context) error {
	if b.commitErr != nil {
		return b.commitErr
	}
	b.committed = true
	return nil
}

type fakeListRepo struct {
	lists map[string]*models.List
	err   error
}

func (f *fakeListRepo) GetByID(ctx context.Context, id string) (*models.List, error) {
	if f.err != nil {
		return nil, f.err
	}
	list, ok := f.lists[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return list, nil
}

type fakeTokenRepo struct {
	mu      sync.Mutex
	tokens  map[string][]string
	removed []string
	err     error
}

func (f *fakeTokenRepo) Tokens(ctx context.Context, userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tokens[userID], nil
}

func (f *fakeTokenRepo) Add(ctx context.Context, userID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[userID] = append(f.tokens[userID], token)
	return nil
}

func (f *fakeTokenRepo) Remove(ctx context.Context, userID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, token)
	kept := f.tokens[userID][:0]
	for _, t := range f.tokens[userID] {
		if t != token {
			kept = append(kept, t)
		}
	}
	f.tokens[userID] = kept
	return nil
}

type fakeMessenger struct {
	mu       sync.Mutex
	sent     []models.PushMessage
	sendErrs map[string]error // keyed by token
}

func (f *fakeMessenger) Send(ctx context.Context, msg models.PushMessage) error {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	if err, ok := f.sendErrs[msg.Token]; ok {
		return err
	}
	return nil
}

func (f *fakeMessenger) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (*notification.MulticastResult, error) {
	result := &notification.MulticastResult{}
	for _, tok := range tokens {
		err := f.Send(ctx, models.PushMessage{Token: tok, Title: title, Body: body, Data: data})
		switch err {
		case nil:
			result.SuccessCount++
		case notification.ErrUnregisteredToken:
			result.Unregistered = append(result.Unregistered, tok)
		}
	}
	return result, nil
}

func (f *fakeMessenger) sentTokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	tokens := make([]string, len(f.sent))
	for i, msg := range f.sent {
		tokens[i] = msg.Token
	}
	return tokens
}
