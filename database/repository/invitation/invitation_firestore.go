package invitationRepo

import (
	"context"
	"fmt"

	"grocli/database"
	"grocli/models"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

// FirestoreInvitationRepo implements InvitationRepository on Firestore.
type FirestoreInvitationRepo struct {
	client *firestore.Client
}

func NewFirestoreInvitationRepo(client *firestore.Client) *FirestoreInvitationRepo {
	return &FirestoreInvitationRepo{client: client}
}

func (r *FirestoreInvitationRepo) Create(ctx context.Context, inv *models.Invitation) (string, error) {
	id := uuid.NewString()
	ref := r.client.Collection(database.CollInvitations).Doc(id)
	if _, err := ref.Set(ctx, inv); err != nil {
		return "", fmt.Errorf("invitation create failed: %w", err)
	}
	return id, nil
}
