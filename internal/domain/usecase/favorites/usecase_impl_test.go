package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abohawa-api/internal/domain/entity"
)

// fakeFavoritesGateway records every save and can fail on demand.
type fakeFavoritesGateway struct {
	stored  []entity.Location
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeFavoritesGateway) Load(ctx context.Context) ([]entity.Location, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.stored, nil
}

func (f *fakeFavoritesGateway) Save(ctx context.Context, favorites []entity.Location) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.stored = favorites
	return nil
}

func dhaka() entity.Location {
	return entity.NewLocation("Dhaka", 23.8103, 90.4125, "BD", "")
}

func chattogram() entity.Location {
	return entity.NewLocation("Chattogram", 22.3569, 91.7832, "BD", "")
}

func sylhet() entity.Location {
	return entity.NewLocation("Sylhet", 24.8949, 91.8687, "BD", "")
}

func TestAddIsIdempotentById(t *testing.T) {
	gw := &fakeFavoritesGateway{}
	uc := NewFavoritesUseCase(context.Background(), gw)

	require.NoError(t, uc.Add(context.Background(), dhaka()))
	require.NoError(t, uc.Add(context.Background(), dhaka()))

	assert.Len(t, uc.List(), 1)
	assert.Equal(t, 1, gw.saves, "duplicate add must not rewrite storage")

	// Same coordinates under a different name are the same entity.
	renamed := dhaka()
	renamed.Name = "DHAKA CITY"
	require.NoError(t, uc.Add(context.Background(), renamed))
	assert.Len(t, uc.List(), 1)
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	gw := &fakeFavoritesGateway{}
	uc := NewFavoritesUseCase(context.Background(), gw)
	require.NoError(t, uc.Add(context.Background(), dhaka()))

	require.NoError(t, uc.Remove(context.Background(), "no-such-id"))
	assert.Len(t, uc.List(), 1)
	assert.Equal(t, 1, gw.saves)

	require.NoError(t, uc.Remove(context.Background(), dhaka().ID))
	assert.Empty(t, uc.List())
	assert.Equal(t, 2, gw.saves)
}

func TestIsFavorite(t *testing.T) {
	uc := NewFavoritesUseCase(context.Background(), &fakeFavoritesGateway{})
	require.NoError(t, uc.Add(context.Background(), dhaka()))

	assert.True(t, uc.IsFavorite(dhaka().ID))
	assert.False(t, uc.IsFavorite(chattogram().ID))
}

func TestReorderPreservesMembershipAndRelativeOrder(t *testing.T) {
	uc := NewFavoritesUseCase(context.Background(), &fakeFavoritesGateway{})
	require.NoError(t, uc.Add(context.Background(), dhaka()))
	require.NoError(t, uc.Add(context.Background(), chattogram()))
	require.NoError(t, uc.Add(context.Background(), sylhet()))

	require.NoError(t, uc.Reorder(context.Background(), 0, 2))

	list := uc.List()
	require.Len(t, list, 3)
	assert.Equal(t, chattogram().ID, list[0].ID)
	assert.Equal(t, sylhet().ID, list[1].ID)
	assert.Equal(t, dhaka().ID, list[2].ID)

	assert.Error(t, uc.Reorder(context.Background(), 0, 5))
}

func TestPersistFailureLeavesSetUnchanged(t *testing.T) {
	gw := &fakeFavoritesGateway{}
	uc := NewFavoritesUseCase(context.Background(), gw)
	require.NoError(t, uc.Add(context.Background(), dhaka()))

	gw.saveErr = errors.New("storage down")
	assert.Error(t, uc.Add(context.Background(), chattogram()))
	assert.Len(t, uc.List(), 1)
}

func TestLoadFailureDefaultsToEmptySet(t *testing.T) {
	gw := &fakeFavoritesGateway{loadErr: errors.New("corrupt payload")}
	uc := NewFavoritesUseCase(context.Background(), gw)

	assert.Empty(t, uc.List())
}

func TestLoadedFavoritesSurviveRestart(t *testing.T) {
	gw := &fakeFavoritesGateway{stored: []entity.Location{dhaka(), chattogram()}}
	uc := NewFavoritesUseCase(context.Background(), gw)

	list := uc.List()
	require.Len(t, list, 2)
	assert.Equal(t, dhaka().ID, list[0].ID)
}
