//go:build integration_test || all_tests

package workouts

import (
	"testing"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/training"
	testingpkg "github.com/2beens/fitforge/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStore_Redis(t *testing.T) {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(t)
	store := NewDraftStore(rdb, time.Minute)

	started := time.Date(2024, 6, 10, 17, 40, 0, 0, time.UTC)
	draft, err := store.Create(ctx, started)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Delete(ctx, draft.ID) })

	ttl, err := rdb.TTL(ctx, draftKey(draft.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	draft.Exercises = append(draft.Exercises, training.ExerciseWithSets{
		ExerciseID: "squat",
		Sets:       []training.Set{{ExerciseID: "squat", SetNumber: 1, Weight: 225, Reps: 5}},
	})
	require.NoError(t, store.Save(ctx, draft))

	stored, err := store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, stored.StartedAt.Equal(started))
	require.Len(t, stored.Exercises, 1)
	assert.Equal(t, 225.0, stored.Exercises[0].Sets[0].Weight)

	require.NoError(t, store.Delete(ctx, draft.ID))
	_, err = store.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.ErrorIs(t, store.Delete(ctx, draft.ID), ErrDraftNotFound)
}

func TestAnalysisCache_Redis(t *testing.T) {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(t)
	cache := NewAnalysisCache(rdb, time.Minute)

	before, err := cache.HistoryVersion(ctx)
	require.NoError(t, err)
	after, err := cache.BumpHistoryVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)

	key := AnalysisKey(after, "balance", 30, time.Now())
	t.Cleanup(func() { rdb.Del(ctx, key) })

	var dst map[string]int
	found, err := cache.Get(ctx, key, &dst)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, key, map[string]int{"score": 87}))
	found, err = cache.Get(ctx, key, &dst)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 87, dst["score"])
}
