package tokenRepo

import (
	"context"
	"fmt"

	"grocli/database"
	"grocli/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreTokenRepo stores token registrations at users/{uid}/private/tokens.
type FirestoreTokenRepo struct {
	client *firestore.Client
}

func NewFirestoreTokenRepo(client *firestore.Client) *FirestoreTokenRepo {
	return &FirestoreTokenRepo{client: client}
}

func (r *FirestoreTokenRepo) tokensDoc(userID string) *firestore.DocumentRef {
	return r.client.Collection(database.CollUsers).Doc(userID).
		Collection(database.CollPrivate).Doc(database.DocTokens)
}

func (r *FirestoreTokenRepo) Tokens(ctx context.Context, userID string) ([]string, error) {
	doc, err := r.tokensDoc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tokens for user %s: get failed: %w", userID, err)
	}
	var reg models.TokenRegistration
	if err := doc.DataTo(&reg); err != nil {
		return nil, fmt.Errorf("tokens for user %s: decode failed: %w", userID, err)
	}
	return reg.FCMTokens, nil
}

func (r *FirestoreTokenRepo) Add(ctx context.Context, userID, token string) error {
	_, err := r.tokensDoc(userID).Set(ctx, map[string]interface{}{
		"fcmTokens": firestore.ArrayUnion(token),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("tokens for user %s: add failed: %w", userID, err)
	}
	return nil
}

func (r *FirestoreTokenRepo) Remove(ctx context.Context, userID, token string) error {
	_, err := r.tokensDoc(userID).Update(ctx, []firestore.Update{
		{Path: "fcmTokens", Value: firestore.ArrayRemove(token)},
	})
	if status.Code(err) == codes.NotFound {
		// Registration document already gone; nothing to remove.
		return nil
	}
	if err != nil {
		return fmt.Errorf("tokens for user %s: remove failed: %w", userID, err)
	}
	return nil
}
