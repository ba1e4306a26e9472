package user

import (
	"context"
	"errors"
	"testing"

	"grocli/models"

	"go.uber.org/zap"
)

type fakeUserRepo struct {
	profiles []*models.UserProfile
	purged   []string
	err      error
}

func (f *fakeUserRepo) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	if f.err != nil {
		return f.err
	}
	f.profiles = append(f.profiles, profile)
	return nil
}

func (f *fakeUserRepo) PurgeUserData(ctx context.Context, uid string) error {
	if f.err != nil {
		return f.err
	}
	f.purged = append(f.purged, uid)
	return nil
}

func TestUserCreatedMirrorsProfile(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	ev := models.AuthEvent{
		Type:        models.AuthEventUserCreated,
		UID:         "u1",
		Email:       "u1@example.com",
		DisplayName: "Alice",
	}
	if err := svc.HandleAuthEvent(context.Background(), ev); err != nil {
		t.Fatalf("handle event: %v", err)
	}
	if len(repo.profiles) != 1 {
		t.Fatalf("expected one profile, got %d", len(repo.profiles))
	}
	p := repo.profiles[0]
	if p.UID != "u1" || p.Email != "u1@example.com" || p.DisplayName != "Alice" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestUserDeletedPurgesData(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	ev := models.AuthEvent{Type: models.AuthEventUserDeleted, UID: "u1"}
	if err := svc.HandleAuthEvent(context.Background(), ev); err != nil {
		t.Fatalf("handle event: %v", err)
	}
	if len(repo.purged) != 1 || repo.purged[0] != "u1" {
		t.Fatalf("expected u1 purged, got %v", repo.purged)
	}
}

func TestUnknownEventTypeRejected(t *testing.T) {
	svc := &DefaultUserService{Repo: &fakeUserRepo{}, Logger: zap.NewNop()}

	ev := models.AuthEvent{Type: "user.suspended", UID: "u1"}
	if err := svc.HandleAuthEvent(context.Background(), ev); err == nil {
		t.Fatal("expected unknown event type to be rejected")
	}
}

func TestRepoFailurePropagates(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("firestore down")}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	ev := models.AuthEvent{Type: models.AuthEventUserCreated, UID: "u1"}
	if err := svc.HandleAuthEvent(context.Background(), ev); err == nil {
		t.Fatal("expected repo failure to propagate")
	}
}
