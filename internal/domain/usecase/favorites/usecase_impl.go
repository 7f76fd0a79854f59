package favorites

import (
	"context"
	"fmt"
	"sync"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/gateway/db"
	"abohawa-api/pkg/log"
)

type favoritesUseCase struct {
	mutex     sync.RWMutex
	favorites []entity.Location
	dbGateway db.FavoritesGateway
}

// NewFavoritesUseCase loads the persisted set once and serves it for the
// rest of the session. A missing or unreadable persisted value degrades to
// an empty set; it is never fatal.
func NewFavoritesUseCase(ctx context.Context, dbGateway db.FavoritesGateway) UseCase {
	loaded, err := dbGateway.Load(ctx)
	if err != nil {
		log.Warnf("Failed to load favorites, starting with an empty set: %v", err)
		loaded = []entity.Location{}
	}

	return &favoritesUseCase{
		favorites: loaded,
		dbGateway: dbGateway,
	}
}

// Add inserts the location unless one with the same id already exists (idempotent)
func (uc *favoritesUseCase) Add(ctx context.Context, location entity.Location) error {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	for _, fav := range uc.favorites {
		if fav.ID == location.ID {
			return nil
		}
	}

	updated := append(append([]entity.Location{}, uc.favorites...), location)
	if err := uc.dbGateway.Save(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	uc.favorites = updated
	return nil
}

// Remove deletes the entry with the given id; absent ids are a no-op
func (uc *favoritesUseCase) Remove(ctx context.Context, id string) error {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	index := -1
	for i, fav := range uc.favorites {
		if fav.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	updated := make([]entity.Location, 0, len(uc.favorites)-1)
	updated = append(updated, uc.favorites[:index]...)
	updated = append(updated, uc.favorites[index+1:]...)

	if err := uc.dbGateway.Save(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	uc.favorites = updated
	return nil
}

// IsFavorite reports membership by id
func (uc *favoritesUseCase) IsFavorite(id string) bool {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()

	for _, fav := range uc.favorites {
		if fav.ID == id {
			return true
		}
	}
	return false
}

// Reorder moves a single entry to a new position, keeping all other relative orders
func (uc *favoritesUseCase) Reorder(ctx context.Context, fromIndex, toIndex int) error {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	size := len(uc.favorites)
	if fromIndex < 0 || fromIndex >= size || toIndex < 0 || toIndex >= size {
		return fmt.Errorf("reorder indexes out of range: from=%d to=%d size=%d", fromIndex, toIndex, size)
	}
	if fromIndex == toIndex {
		return nil
	}

	updated := make([]entity.Location, 0, size)
	updated = append(updated, uc.favorites[:fromIndex]...)
	updated = append(updated, uc.favorites[fromIndex+1:]...)
	moved := uc.favorites[fromIndex]
	updated = append(updated[:toIndex], append([]entity.Location{moved}, updated[toIndex:]...)...)

	if err := uc.dbGateway.Save(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	uc.favorites = updated
	return nil
}

// List returns the favorites in display order
func (uc *favoritesUseCase) List() []entity.Location {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()

	out := make([]entity.Location, len(uc.favorites))
	copy(out, uc.favorites)
	return out
}
