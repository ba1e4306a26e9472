package invitation

import (
	"context"
	"fmt"

	invitationRepo "grocli/database/repository/invitation"
	tokenRepo "grocli/database/repository/token"
	"grocli/models"
	"grocli/services/notification"

	"go.uber.org/zap"
)

// DefaultInvitationService is the production implementation.
type DefaultInvitationService struct {
	Repo   invitationRepo.InvitationRepository
	Queue  NotifyEnqueuer
	Logger *zap.Logger
}

func (s *DefaultInvitationService) Invite(ctx context.Context, inv *models.Invitation) (string, error) {
	id, err := s.Repo.Create(ctx, inv)
	if err != nil {
		return "", fmt.Errorf("Invite: %w", err)
	}

	payload := models.InvitationNotifyPayload{
		InvitationID: id,
		ListID:       inv.ListID,
		ListName:     inv.ListName,
		SenderName:   inv.SenderName,
		RecipientID:  inv.RecipientID,
	}
	// The push is a best-effort side effect of creating the invitation;
	// an enqueue failure must not roll the document back.
	if err := s.Queue.EnqueueInvitationNotify(ctx, payload); err != nil {
		s.Logger.Error("failed to enqueue invitation notification",
			zap.String("invitationId", id),
			zap.Error(err))
	}
	return id, nil
}

// Notifier delivers one invitation push. It runs inside the async worker.
type Notifier struct {
	Tokens    tokenRepo.TokenRepository
	Messenger notification.Messenger
	Logger    *zap.Logger
}

// NotifyRecipient multicast-sends the invitation notification to every
// token the recipient has registered. A recipient with no tokens is a
// successful no-op. Tokens the channel reports as unregistered are removed.
func (n *Notifier) NotifyRecipient(ctx context.Context, p models.InvitationNotifyPayload) error {
	tokens, err := n.Tokens.Tokens(ctx, p.RecipientID)
	if err != nil {
		return fmt.Errorf("NotifyRecipient: %w", err)
	}
	if len(tokens) == 0 {
		n.Logger.Info("no FCM tokens for invitation recipient",
			zap.String("recipientId", p.RecipientID),
			zap.String("invitationId", p.InvitationID))
		return nil
	}

	title := "New List Invitation"
	body := fmt.Sprintf("%s invited you to %s", p.SenderName, p.ListName)
	data := map[string]string{
		"type":         models.NotificationTypeListInvitation,
		"invitationId": p.InvitationID,
		"listId":       p.ListID,
	}

	result, err := n.Messenger.SendMulticast(ctx, tokens, title, body, data)
	if err != nil {
		return fmt.Errorf("NotifyRecipient: %w", err)
	}

	for _, tok := range result.Unregistered {
		if rmErr := n.Tokens.Remove(ctx, p.RecipientID, tok); rmErr != nil {
			n.Logger.Error("failed to remove unregistered token",
				zap.String("recipientId", p.RecipientID),
				zap.Error(rmErr))
		}
	}

	n.Logger.Info("invitation notification sent",
		zap.String("invitationId", p.InvitationID),
		zap.String("recipientId", p.RecipientID),
		zap.Int("successCount", result.SuccessCount),
		zap.Int("unregisteredTokens", len(result.Unregistered)))
	return nil
}
