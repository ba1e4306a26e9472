package invitation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"grocli/models"
	"grocli/services/notification"

	"go.uber.org/zap"
)

type fakeInvitationRepo struct {
	created []*models.Invitation
	err     error
}

func (f *fakeInvitationRepo) Create(ctx context.Context, inv *models.Invitation) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, inv)
	return "inv-1", nil
}

type fakeEnqueuer struct {
	payloads []models.InvitationNotifyPayload
	err      error
}

func (f *fakeEnqueuer) EnqueueInvitationNotify(ctx context.Context, payload models.InvitationNotifyPayload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
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
	return nil
}

func (f *fakeTokenRepo) Remove(ctx context.Context, userID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, token)
	return nil
}

type fakeMessenger struct {
	sentTokens   []string
	unregistered map[string]bool
	err          error
}

func (f *fakeMessenger) Send(ctx context.Context, msg models.PushMessage) error {
	f.sentTokens = append(f.sentTokens, msg.Token)
	return nil
}

func (f *fakeMessenger) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (*notification.MulticastResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sentTokens = append(f.sentTokens, tokens...)
	result := &notification.MulticastResult{}
	for _, tok := range tokens {
		if f.unregistered[tok] {
			result.Unregistered = append(result.Unregistered, tok)
		} else {
			result.SuccessCount++
		}
	}
	return result, nil
}

func TestInviteCreatesAndEnqueues(t *testing.T) {
	repo := &fakeInvitationRepo{}
	queue := &fakeEnqueuer{}
	svc := &DefaultInvitationService{Repo: repo, Queue: queue, Logger: zap.NewNop()}

	inv := &models.Invitation{
		ListID:      "L1",
		ListName:    "Groceries",
		SenderName:  "Alice",
		RecipientID: "u2",
	}
	id, err := svc.Invite(context.Background(), inv)
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if id != "inv-1" {
		t.Fatalf("expected id inv-1, got %q", id)
	}
	if len(queue.payloads) != 1 {
		t.Fatalf("expected one enqueued payload, got %d", len(queue.payloads))
	}
	p := queue.payloads[0]
	if p.InvitationID != "inv-1" || p.RecipientID != "u2" || p.ListName != "Groceries" {
		t.Fatalf("unexpected payload %+v", p)
	}
}

func TestInviteSurvivesEnqueueFailure(t *testing.T) {
	repo := &fakeInvitationRepo{}
	queue := &fakeEnqueuer{err: errors.New("queue down")}
	svc := &DefaultInvitationService{Repo: repo, Queue: queue, Logger: zap.NewNop()}

	id, err := svc.Invite(context.Background(), &models.Invitation{RecipientID: "u2"})
	if err != nil {
		t.Fatalf("invitation creation must not fail on enqueue error, got %v", err)
	}
	if id != "inv-1" {
		t.Fatalf("expected id inv-1, got %q", id)
	}
}

func TestInviteRepoFailurePropagates(t *testing.T) {
	repo := &fakeInvitationRepo{err: errors.New("firestore down")}
	svc := &DefaultInvitationService{Repo: repo, Queue: &fakeEnqueuer{}, Logger: zap.NewNop()}

	if _, err := svc.Invite(context.Background(), &models.Invitation{}); err == nil {
		t.Fatal("expected repo failure to propagate")
	}
}

func TestNotifyRecipientNoTokensIsNoop(t *testing.T) {
	tokens := &fakeTokenRepo{tokens: map[string][]string{}}
	msgr := &fakeMessenger{}
	n := &Notifier{Tokens: tokens, Messenger: msgr, Logger: zap.NewNop()}

	err := n.NotifyRecipient(context.Background(), models.InvitationNotifyPayload{
		InvitationID: "inv-1",
		RecipientID:  "u2",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(msgr.sentTokens) != 0 {
		t.Fatalf("expected no sends, got %v", msgr.sentTokens)
	}
}

func TestNotifyRecipientRemovesUnregisteredTokens(t *testing.T) {
	tokens := &fakeTokenRepo{tokens: map[string][]string{"u2": {"tokA", "tokB"}}}
	msgr := &fakeMessenger{unregistered: map[string]bool{"tokA": true}}
	n := &Notifier{Tokens: tokens, Messenger: msgr, Logger: zap.NewNop()}

	err := n.NotifyRecipient(context.Background(), models.InvitationNotifyPayload{
		InvitationID: "inv-1",
		ListID:       "L1",
		ListName:     "Groceries",
		SenderName:   "Alice",
		RecipientID:  "u2",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(tokens.removed) != 1 || tokens.removed[0] != "tokA" {
		t.Fatalf("expected only tokA removed, got %v", tokens.removed)
	}
}

func TestNotifyRecipientSendFailurePropagates(t *testing.T) {
	tokens := &fakeTokenRepo{tokens: map[string][]string{"u2": {"tokA"}}}
	msgr := &fakeMessenger{err: errors.New("fcm down")}
	n := &Notifier{Tokens: tokens, Messenger: msgr, Logger: zap.NewNop()}

	err := n.NotifyRecipient(context.Background(), models.InvitationNotifyPayload{RecipientID: "u2"})
	if err == nil {
		t.Fatal("expected multicast failure to propagate for worker retry")
	}
}
