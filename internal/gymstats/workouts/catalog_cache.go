package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/training"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	catalogCacheKey  = "catalog::snapshot"
	catalogCacheSize = 4 * 1024 * 1024
)

//go:generate mockgen -source=$GOFILE -destination=catalog_cache_mocks_test.go -package=workouts_test

type definitionsLister interface {
	List(ctx context.Context) ([]training.ExerciseDefinition, error)
}

// CatalogCache serves immutable catalog snapshots, loading from the repo on a miss.
type CatalogCache struct {
	cache  *freecache.Cache
	ttl    time.Duration
	source definitionsLister
}

func NewCatalogCache(source definitionsLister, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		cache:  freecache.NewCache(catalogCacheSize),
		ttl:    ttl,
		source: source,
	}
}

func (c *CatalogCache) Snapshot(ctx context.Context) (*training.StaticCatalog, error) {
	if cachedBytes, err := c.cache.Get([]byte(catalogCacheKey)); err == nil {
		var defs []training.ExerciseDefinition
		jsonErr := json.Unmarshal(cachedBytes, &defs)
		if jsonErr == nil {
			return training.NewStaticCatalog(defs), nil
		}
		log.Warnf("catalog cache: drop undecodable snapshot: %s", jsonErr)
	}

	defs, err := c.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}

	defsBytes, err := json.Marshal(defs)
	if err != nil {
		return nil, fmt.Errorf("marshal definitions: %w", err)
	}
	if err := c.cache.Set([]byte(catalogCacheKey), defsBytes, int(c.ttl.Seconds())); err != nil {
		// too large for the cache, serve it uncached
		log.Errorf("catalog cache set: %s", err)
	}

	return training.NewStaticCatalog(defs), nil
}

func (c *CatalogCache) Invalidate() {
	c.cache.Del([]byte(catalogCacheKey))
}
