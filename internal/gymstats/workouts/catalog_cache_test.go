package workouts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogCache_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockdefinitionsLister(ctrl)
	cache := workouts.NewCatalogCache(lister, time.Minute)
	ctx := context.Background()

	// loaded once, then served from memory
	lister.EXPECT().List(ctx).Return(testCatalog.Definitions(), nil).Times(1)
	for i := 0; i < 3; i++ {
		catalog, err := cache.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, catalog.Len())
		_, ok := catalog.Lookup("squat")
		assert.True(t, ok)
	}

	// invalidation forces a reload
	cache.Invalidate()
	lister.EXPECT().List(ctx).Return(testCatalog.Definitions()[:1], nil)
	catalog, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
}

func TestCatalogCache_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockdefinitionsLister(ctrl)
	cache := workouts.NewCatalogCache(lister, time.Minute)
	ctx := context.Background()

	lister.EXPECT().List(ctx).Return(nil, errors.New("db down"))
	_, err := cache.Snapshot(ctx)
	assert.EqualError(t, err, "list definitions: db down")

	// failures are not cached
	lister.EXPECT().List(ctx).Return(nil, nil)
	catalog, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
}
