package listRepo

import (
	"context"

	"grocli/models"
)

// ListRepository defines read access to list documents. The dispatch
// pipeline only ever reads lists, never writes them.
type ListRepository interface {
	// GetByID retrieves a list by its document ID. Returns
	// database.ErrNotFound for a dangling reference.
	GetByID(ctx context.Context, id string) (*models.List, error)
}
