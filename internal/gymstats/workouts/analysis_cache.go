package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	historyVersionKey = "fitforge::history::version"
	analysisKeyPrefix = "fitforge::analysis::"
)

// AnalysisCache keeps recovery and balance results in redis.
// The key embeds the history version, so adding or deleting a session invalidates every entry.
type AnalysisCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewAnalysisCache(redisClient *redis.Client, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// AnalysisKey is hour-granular: the decay model counts whole days.
func AnalysisKey(historyVersion int64, kind string, windowDays int, now time.Time) string {
	return fmt.Sprintf("%s%d::%s::%d::%d", analysisKeyPrefix, historyVersion, kind, windowDays, now.UTC().Truncate(time.Hour).Unix())
}

func (c *AnalysisCache) HistoryVersion(ctx context.Context) (int64, error) {
	version, err := c.redisClient.Get(ctx, historyVersionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get history version: %w", err)
	}
	return version, nil
}

func (c *AnalysisCache) BumpHistoryVersion(ctx context.Context) (int64, error) {
	version, err := c.redisClient.Incr(ctx, historyVersionKey).Result()
	if err != nil {
		return 0, fmt.Errorf("bump history version: %w", err)
	}
	return version, nil
}

// Get decodes the cached value into dst and reports whether it was found.
func (c *AnalysisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	cachedBytes, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get cached analysis: %w", err)
	}
	if err := json.Unmarshal(cachedBytes, dst); err != nil {
		log.Warnf("drop undecodable cached analysis [%s]: %s", key, err)
		return false, nil
	}
	return true, nil
}

func (c *AnalysisCache) Set(ctx context.Context, key string, value any) error {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, valueBytes, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache analysis: %w", err)
	}
	return nil
}
