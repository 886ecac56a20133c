// Package albums caches the server's album list locally so a previously
// fetched list can still be shown when the server is unreachable.
package albums

import (
	"context"

	"github.com/dmitrijs2005/travelmate/internal/client/models"
)

type Repository interface {
	// Replace swaps the whole cache for the given list atomically.
	Replace(ctx context.Context, albums []models.Album) error
	GetAll(ctx context.Context) ([]models.Album, error)
	Delete(ctx context.Context, name string) error
}
