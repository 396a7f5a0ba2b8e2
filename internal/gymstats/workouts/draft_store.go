package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const draftKeyPrefix = "fitforge::draft::"

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore keeps the in-progress workouts in redis. Every save refreshes the TTL.
type DraftStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	// injectable id generator (for unit tests)
	NewIDFunc func() string
}

func NewDraftStore(redisClient *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{
		redisClient: redisClient,
		ttl:         ttl,
		NewIDFunc:   uuid.NewString,
	}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

// Create stores a new empty draft.
func (s *DraftStore) Create(ctx context.Context, startedAt time.Time) (_ *training.Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.drafts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	draft := &training.Draft{
		ID:        s.NewIDFunc(),
		StartedAt: startedAt,
		UpdatedAt: startedAt,
		Exercises: []training.ExerciseWithSets{},
	}
	span.SetAttributes(attribute.String("draft.id", draft.ID))

	if err := s.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DraftStore) Get(ctx context.Context, id string) (_ *training.Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.drafts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("draft.id", id))

	draftBytes, err := s.redisClient.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var draft training.Draft
	if err := json.Unmarshal(draftBytes, &draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return &draft, nil
}

// Save writes the draft and bumps its version.
func (s *DraftStore) Save(ctx context.Context, draft *training.Draft) error {
	draft.Version++
	draftBytes, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.redisClient.Set(ctx, draftKey(draft.ID), draftBytes, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *DraftStore) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.drafts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("draft.id", id))

	deleted, err := s.redisClient.Del(ctx, draftKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if deleted == 0 {
		return ErrDraftNotFound
	}
	return nil
}
