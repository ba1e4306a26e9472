package tokenRepo

import "context"

// TokenRepository manages per-user FCM token registrations.
type TokenRepository interface {
	// Tokens returns the user's registered FCM tokens. A user with no
	// registration document yields an empty slice, not an error.
	Tokens(ctx context.Context, userID string) ([]string, error)
	// Add registers a token for the user, creating the registration
	// document if needed. Adding an existing token is a no-op.
	Add(ctx context.Context, userID, token string) error
	// Remove deletes a single token from the user's registration. Removing
	// a token that is not registered is a no-op.
	Remove(ctx context.Context, userID, token string) error
}
