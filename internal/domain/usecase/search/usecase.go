package search

import (
	"context"

	"abohawa-api/internal/domain/entity"
)

// SearchUseCase serves debounced location-name suggestions. Every Suggest
// call counts as a keystroke: it restarts the shared debounce window, and
// only the query standing when the window elapses reaches the provider.
type SearchUseCase interface {
	// Suggest resolves to at most five candidate locations for the query.
	// Superseded keystrokes, queries shorter than the minimum and provider
	// failures all resolve to an empty list; the error is reserved for
	// context cancellation
	Suggest(ctx context.Context, query string) ([]entity.Location, error)
}
