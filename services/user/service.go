package user

import (
	"context"
	"fmt"

	userRepo "grocli/database/repository/user"
	"grocli/models"

	"go.uber.org/zap"
)

// UserService mirrors auth lifecycle events into the document store.
type UserService interface {
	HandleAuthEvent(ctx context.Context, ev models.AuthEvent) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func (s *DefaultUserService) HandleAuthEvent(ctx context.Context, ev models.AuthEvent) error {
	switch ev.Type {
	case models.AuthEventUserCreated:
		profile := &models.UserProfile{
			UID:         ev.UID,
			Email:       ev.Email,
			DisplayName: ev.DisplayName,
			PhotoURL:    ev.PhotoURL,
		}
		if err := s.Repo.CreateProfile(ctx, profile); err != nil {
			return fmt.Errorf("HandleAuthEvent: %w", err)
		}
		s.Logger.Info("created user profile document", zap.String("uid", ev.UID))
		return nil

	case models.AuthEventUserDeleted:
		if err := s.Repo.PurgeUserData(ctx, ev.UID); err != nil {
			return fmt.Errorf("HandleAuthEvent: %w", err)
		}
		s.Logger.Info("purged user data", zap.String("uid", ev.UID))
		return nil

	default:
		return fmt.Errorf("HandleAuthEvent: unknown event type %q", ev.Type)
	}
}
