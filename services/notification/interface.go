package notification

import (
	"context"
	"errors"

	"grocli/models"
)

// ErrUnregisteredToken signals that the delivery channel reported the
// destination token as permanently invalid. Callers respond by removing
// that token from the recipient's registration; it is never retried.
var ErrUnregisteredToken = errors.New("push token is no longer registered")

// MulticastResult summarizes a multi-token send.
type MulticastResult struct {
	SuccessCount int
	// Unregistered lists the tokens the channel reported as invalid.
	Unregistered []string
}

// Messenger defines the narrow push-delivery capability consumed by the
// dispatch pipeline and the invitation worker.
type Messenger interface {
	// Send dispatches one push message to a single token.
	Send(ctx context.Context, msg models.PushMessage) error
	// SendMulticast dispatches the same notification to several tokens,
	// reporting per-token invalidity without failing the whole send.
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (*MulticastResult, error)
}
