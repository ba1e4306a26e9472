package invitation

import (
	"context"

	"grocli/models"
)

// InvitationService creates list invitations and schedules their
// notification delivery.
type InvitationService interface {
	// Invite persists the invitation and enqueues the recipient's push.
	Invite(ctx context.Context, inv *models.Invitation) (string, error)
}

// NotifyEnqueuer hands an invitation notification to the async worker.
type NotifyEnqueuer interface {
	EnqueueInvitationNotify(ctx context.Context, payload models.InvitationNotifyPayload) error
}
