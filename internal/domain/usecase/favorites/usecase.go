package favorites

import (
	"context"

	"abohawa-api/internal/domain/entity"
)

// UseCase maintains the deduplicated, order-preserving favorite-location
// set. Every mutation persists the full set before returning.
type UseCase interface {
	// Add inserts the location unless one with the same id already exists (idempotent)
	Add(ctx context.Context, location entity.Location) error

	// Remove deletes the entry with the given id; absent ids are a no-op
	Remove(ctx context.Context, id string) error

	// IsFavorite reports membership by id
	IsFavorite(id string) bool

	// Reorder moves a single entry to a new position, keeping all other relative orders
	Reorder(ctx context.Context, fromIndex, toIndex int) error

	// List returns the favorites in display order
	List() []entity.Location
}
