package listRepo

import (
	"context"
	"fmt"

	"grocli/database"
	"grocli/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreListRepo implements ListRepository on Firestore.
type FirestoreListRepo struct {
	client *firestore.Client
}

func NewFirestoreListRepo(client *firestore.Client) *FirestoreListRepo {
	return &FirestoreListRepo{client: client}
}

func (r *FirestoreListRepo) GetByID(ctx context.Context, id string) (*models.List, error) {
	doc, err := r.client.Collection(database.CollLists).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: get failed: %w", id, err)
	}
	var list models.List
	if err := doc.DataTo(&list); err != nil {
		return nil, fmt.Errorf("list %s: decode failed: %w", id, err)
	}
	list.ID = doc.Ref.ID
	return &list, nil
}
