package userRepo

import (
	"context"

	"grocli/models"
)

// UserRepository mirrors auth accounts into profile documents and purges
// a user's data when the account is deleted.
type UserRepository interface {
	// CreateProfile writes the users/{uid} profile document.
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
	// PurgeUserData deletes the user's profile document, their token
	// registration, and every list they own, in a single batch.
	PurgeUserData(ctx context.Context, uid string) error
}
