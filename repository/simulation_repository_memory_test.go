package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sci-simulator/domain"
)

func TestSimulationRepositoryMemory_SaveAndFind(t *testing.T) {
	repo := NewSimulationRepositoryMemory()
	ctx := context.Background()

	sim := domain.Simulation{ID: "a", Inputs: domain.ReferenceInputs()}
	require.NoError(t, repo.Save(ctx, sim))

	found, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, sim, found)

	_, err = repo.FindByID(ctx, "b")
	assert.ErrorIs(t, err, ErrSimulationNotFound)
}

func TestSimulationRepositoryMemory_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewSimulationRepositoryMemory()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Save(ctx, domain.Simulation{ID: id}))
	}
	// replacing keeps the original position
	require.NoError(t, repo.Save(ctx, domain.Simulation{ID: "a", Explanation: "updated"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "updated", list[1].Explanation)
	assert.Equal(t, "b", list[2].ID)
}

func TestMockCache(t *testing.T) {
	cache := NewMockCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}
