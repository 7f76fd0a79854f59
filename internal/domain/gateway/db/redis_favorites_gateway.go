package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/pkg/redis"
)

// redisFavoritesGateway stores the favorite list as a single JSON blob under
// a configured key, mirroring the client-side storage it replaced.
type redisFavoritesGateway struct {
	client     *redis.Client
	storageKey string
}

// NewRedisFavoritesGateway creates a FavoritesGateway backed by Redis.
func NewRedisFavoritesGateway(client *redis.Client, storageKey string) FavoritesGateway {
	return &redisFavoritesGateway{
		client:     client,
		storageKey: storageKey,
	}
}

// Load returns the persisted list, or an empty list when nothing is stored
func (g *redisFavoritesGateway) Load(ctx context.Context) ([]entity.Location, error) {
	raw, err := g.client.Get(ctx, g.storageKey)
	if errors.Is(err, redis.ErrKeyNotFound) {
		return []entity.Location{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	var favorites []entity.Location
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favorites, nil
}

// Save rewrites the full list
func (g *redisFavoritesGateway) Save(ctx context.Context, favorites []entity.Location) error {
	raw, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := g.client.Set(ctx, g.storageKey, raw, 0); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
