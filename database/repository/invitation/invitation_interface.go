package invitationRepo

import (
	"context"

	"grocli/models"
)

// InvitationRepository persists list invitations.
type InvitationRepository interface {
	// Create stores a new invitation and returns its generated document ID.
	Create(ctx context.Context, inv *models.Invitation) (string, error)
}
