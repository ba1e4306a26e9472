package userRepo

import (
	"context"
	"fmt"

	"grocli/database"
	"grocli/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreUserRepo implements UserRepository on Firestore.
type FirestoreUserRepo struct {
	client *firestore.Client
}

func NewFirestoreUserRepo(client *firestore.Client) *FirestoreUserRepo {
	return &FirestoreUserRepo{client: client}
}

func (r *FirestoreUserRepo) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	ref := r.client.Collection(database.CollUsers).Doc(profile.UID)
	if _, err := ref.Set(ctx, profile); err != nil {
		return fmt.Errorf("user %s: profile create failed: %w", profile.UID, err)
	}
	return nil
}

func (r *FirestoreUserRepo) PurgeUserData(ctx context.Context, uid string) error {
	batch := r.client.Batch()

	userRef := r.client.Collection(database.CollUsers).Doc(uid)
	batch.Delete(userRef)
	batch.Delete(userRef.Collection(database.CollPrivate).Doc(database.DocTokens))

	iter := r.client.Collection(database.CollLists).
		Where("ownerId", "==", uid).
		Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("user %s: owned lists query failed: %w", uid, err)
		}
		batch.Delete(doc.Ref)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("user %s: purge commit failed: %w", uid, err)
	}
	return nil
}
