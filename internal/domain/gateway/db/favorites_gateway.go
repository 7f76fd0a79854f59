package db

import (
	"context"

	"abohawa-api/internal/domain/entity"
)

// FavoritesGateway persists the ordered favorite-location list as a whole:
// one load at startup, one full rewrite per mutation.
type FavoritesGateway interface {
	// Load returns the persisted list, or an empty list when nothing is stored
	Load(ctx context.Context) ([]entity.Location, error)

	// Save rewrites the full list
	Save(ctx context.Context, favorites []entity.Location) error
}
