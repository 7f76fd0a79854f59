package search

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/gateway/api"
	"abohawa-api/pkg/log"
)

const maxSuggestions = 5

// pendingLookup tracks one in-flight keystroke. done is closed exactly once,
// either when the debounce window fires and the lookup settles, or when a
// newer keystroke supersedes this one.
type pendingLookup struct {
	query      string
	done       chan struct{}
	results    []entity.Location
	superseded bool
}

type searchUseCaseImpl struct {
	gateway  api.WeatherGateway
	clock    clockwork.Clock
	debounce time.Duration
	minQuery int

	mu      sync.Mutex
	pending *pendingLookup
	timer   clockwork.Timer
}

// NewSearchUseCase builds the debounced suggestion use case. debounce is the
// quiet window after the last keystroke; minQuery is the minimum rune count
// before the provider is consulted at all.
func NewSearchUseCase(gateway api.WeatherGateway, clock clockwork.Clock, debounce time.Duration, minQuery int) SearchUseCase {
	return &searchUseCaseImpl{
		gateway:  gateway,
		clock:    clock,
		debounce: debounce,
		minQuery: minQuery,
	}
}

func (s *searchUseCaseImpl) Suggest(ctx context.Context, query string) ([]entity.Location, error) {
	s.mu.Lock()

	if utf8.RuneCountInString(query) < s.minQuery {
		// Too short to search. The keystroke still cancels whatever was queued.
		s.supersedePendingLocked()
		s.mu.Unlock()
		return []entity.Location{}, nil
	}

	s.supersedePendingLocked()
	call := &pendingLookup{query: query, done: make(chan struct{})}
	s.pending = call
	s.timer = s.clock.AfterFunc(s.debounce, func() {
		s.lookup(call)
	})
	s.mu.Unlock()

	select {
	case <-call.done:
		if call.superseded {
			return []entity.Location{}, nil
		}
		return call.results, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// supersedePendingLocked cancels the outstanding keystroke, if any. Callers
// must hold s.mu.
func (s *searchUseCaseImpl) supersedePendingLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.pending != nil {
		s.pending.superseded = true
		close(s.pending.done)
		s.pending = nil
	}
}

// lookup runs once the debounce window elapses without a newer keystroke.
func (s *searchUseCaseImpl) lookup(call *pendingLookup) {
	locations, err := s.gateway.FindLocations(call.query)
	if err != nil {
		// Suggestion lookups fail silently; the user just sees no candidates.
		log.Warnf("location suggestion lookup failed for %q: %v", call.query, err)
		locations = nil
	}
	if len(locations) > maxSuggestions {
		locations = locations[:maxSuggestions]
	}
	if locations == nil {
		locations = []entity.Location{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != call {
		// A newer keystroke already superseded this one; it was resolved there.
		return
	}
	call.results = locations
	s.pending = nil
	s.timer = nil
	close(call.done)
}
