package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitforge/internal/gymstats"
	"github.com/2beens/fitforge/internal/gymstats/balance"
	"github.com/2beens/fitforge/internal/gymstats/muscles"
	"github.com/2beens/fitforge/internal/gymstats/progression"
	"github.com/2beens/fitforge/internal/gymstats/recovery"
	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/telemetry/metrics"
	"github.com/2beens/fitforge/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

var (
	ErrInvalidDefinition = errors.New("invalid exercise definition")
	ErrInvalidSession    = errors.New("invalid workout session")
	ErrEmptyWorkout      = errors.New("workout has no sets")
	ErrSetNotFound       = training.ErrSetNotFound
)

const (
	analysisKindFatigue = "fatigue"
	analysisKindBalance = "balance"
)

type catalogRepo interface {
	Add(ctx context.Context, def training.ExerciseDefinition) (*training.ExerciseDefinition, error)
	Upsert(ctx context.Context, defs []training.ExerciseDefinition) (int, error)
	Delete(ctx context.Context, id string) error
}

type catalogSnapshotter interface {
	Snapshot(ctx context.Context) (*training.StaticCatalog, error)
	Invalidate()
}

type sessionRepo interface {
	Add(ctx context.Context, session training.WorkoutSession) (int, error)
	Get(ctx context.Context, id int) (*training.WorkoutSession, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, page, size int) ([]training.WorkoutSession, int, error)
	ListSince(ctx context.Context, since time.Time) ([]training.WorkoutSession, error)
}

type draftStore interface {
	Create(ctx context.Context, startedAt time.Time) (*training.Draft, error)
	Get(ctx context.Context, id string) (*training.Draft, error)
	Save(ctx context.Context, draft *training.Draft) error
	Delete(ctx context.Context, id string) error
}

type analysisCache interface {
	HistoryVersion(ctx context.Context) (int64, error)
	BumpHistoryVersion(ctx context.Context) (int64, error)
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type ServiceParams struct {
	Engine         *gymstats.Engine
	CatalogRepo    catalogRepo
	Catalog        catalogSnapshotter
	Sessions       sessionRepo
	Drafts         draftStore
	AnalysisCache  analysisCache
	MetricsManager *metrics.Manager
	// Now is injectable for tests, defaults to time.Now
	Now func() time.Time
}

// Service runs the engine over the stored catalog, drafts and history.
type Service struct {
	engine         *gymstats.Engine
	catalogRepo    catalogRepo
	catalog        catalogSnapshotter
	sessions       sessionRepo
	drafts         draftStore
	analysisCache  analysisCache
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(params ServiceParams) *Service {
	engine := params.Engine
	if engine == nil {
		engine = gymstats.NewDefaultEngine()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		engine:         engine,
		catalogRepo:    params.CatalogRepo,
		catalog:        params.Catalog,
		sessions:       params.Sessions,
		drafts:         params.Drafts,
		analysisCache:  params.AnalysisCache,
		metricsManager: params.MetricsManager,
		now:            now,
	}
}

func (s *Service) Engine() *gymstats.Engine {
	return s.engine
}

func (s *Service) Catalog(ctx context.Context) (*training.StaticCatalog, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog snapshot: %w", err)
	}
	return catalog, nil
}

// catalog

func (s *Service) ListDefinitions(ctx context.Context) ([]training.ExerciseDefinition, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Definitions(), nil
}

func (s *Service) GetDefinition(ctx context.Context, idOrName string) (*training.ExerciseDefinition, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	def, ok := catalog.Lookup(idOrName)
	if !ok {
		return nil, ErrDefinitionNotFound
	}
	return &def, nil
}

func (s *Service) AddDefinition(ctx context.Context, def training.ExerciseDefinition) (*training.ExerciseDefinition, error) {
	def.ID = strings.TrimSpace(def.ID)
	def.Name = strings.TrimSpace(def.Name)
	if def.ID == "" || def.Name == "" {
		return nil, fmt.Errorf("%w: id and name are required", ErrInvalidDefinition)
	}

	engagement := make(map[string]float64, len(def.MuscleEngagement))
	for muscle, pct := range def.MuscleEngagement {
		clamped, ok := muscles.ClampEngagement(pct)
		if !ok {
			return nil, fmt.Errorf("%w: engagement of %s is not a number", ErrInvalidDefinition, muscle)
		}
		engagement[muscle] = clamped
	}
	def.MuscleEngagement = engagement
	def.CreatedAt = s.now()

	added, err := s.catalogRepo.Add(ctx, def)
	if err != nil {
		return nil, err
	}
	s.catalog.Invalidate()
	return added, nil
}

func (s *Service) DeleteDefinition(ctx context.Context, id string) error {
	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.catalog.Invalidate()
	return nil
}

// SeedCatalog upserts the given definitions, e.g. the ones loaded from the seed file on startup.
func (s *Service) SeedCatalog(ctx context.Context, defs []training.ExerciseDefinition) (int, error) {
	if len(defs) == 0 {
		return 0, nil
	}
	upserted, err := s.catalogRepo.Upsert(ctx, defs)
	if err != nil {
		return upserted, fmt.Errorf("seed catalog: %w", err)
	}
	s.catalog.Invalidate()
	return upserted, nil
}

// drafts

func (s *Service) CreateDraft(ctx context.Context) (*training.Draft, error) {
	return s.drafts.Create(ctx, s.now())
}

func (s *Service) GetDraft(ctx context.Context, id string) (*training.Draft, error) {
	return s.drafts.Get(ctx, id)
}

func (s *Service) DeleteDraft(ctx context.Context, id string) error {
	return s.drafts.Delete(ctx, id)
}

// editDraft loads the draft, applies edit and saves the result.
func (s *Service) editDraft(
	ctx context.Context,
	draftID string,
	edit func(draft *training.Draft, catalog *training.StaticCatalog) error,
) (*training.Draft, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	if err := edit(draft, catalog); err != nil {
		return nil, err
	}
	draft.UpdatedAt = s.now()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// AddSet appends a set to the exercise block, creating the block when needed.
func (s *Service) AddSet(ctx context.Context, draftID, exerciseID string, in training.SetInput) (*training.Draft, error) {
	return s.editDraft(ctx, draftID, func(draft *training.Draft, catalog *training.StaticCatalog) error {
		def, ok := catalog.Lookup(exerciseID)
		if !ok {
			return ErrDefinitionNotFound
		}
		_, err := draft.AddSet(def, s.engine.Defaults, in)
		return err
	})
}

// AddExercise adds an exercise block with the default number of sets.
func (s *Service) AddExercise(ctx context.Context, draftID, exerciseID string) (*training.Draft, error) {
	return s.editDraft(ctx, draftID, func(draft *training.Draft, catalog *training.StaticCatalog) error {
		def, ok := catalog.Lookup(exerciseID)
		if !ok {
			return ErrDefinitionNotFound
		}
		return draft.AddExercise(def, s.engine.Defaults)
	})
}

func (s *Service) UpdateSet(ctx context.Context, draftID, exerciseID string, setNumber int, in training.SetInput) (*training.Draft, error) {
	return s.editDraft(ctx, draftID, func(draft *training.Draft, _ *training.StaticCatalog) error {
		_, err := draft.UpdateSet(exerciseID, setNumber, in)
		return err
	})
}

func (s *Service) RemoveSet(ctx context.Context, draftID, exerciseID string, setNumber int) (*training.Draft, error) {
	return s.editDraft(ctx, draftID, func(draft *training.Draft, _ *training.StaticCatalog) error {
		return draft.RemoveSet(exerciseID, setNumber)
	})
}

func (s *Service) RemoveExercise(ctx context.Context, draftID, exerciseID string) (*training.Draft, error) {
	return s.editDraft(ctx, draftID, func(draft *training.Draft, _ *training.StaticCatalog) error {
		return draft.RemoveExercise(exerciseID)
	})
}

// DraftSummary recomputes the volume entries and the duration estimate of the draft only.
func (s *Service) DraftSummary(ctx context.Context, draftID string) (*gymstats.WorkoutSummary, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return s.ComputeVolume(ctx, draft.Exercises)
}

// FinishDraft finalizes the draft into a session, persists it and removes the draft.
func (s *Service) FinishDraft(ctx context.Context, draftID string) (_ *training.WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.drafts.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("draft.id", draftID))

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	session := s.engine.FinishDraft(draft, catalog, s.now())
	if session.TotalSets == 0 {
		return nil, ErrEmptyWorkout
	}

	if err := s.persistSession(ctx, &session); err != nil {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, draftID); err != nil && !errors.Is(err, ErrDraftNotFound) {
		log.Errorf("finish draft [%s]: session %d saved, but draft not deleted: %s", draftID, session.ID, err)
	}
	return &session, nil
}

// sessions

// LogSession stores a completed session that did not go through a draft.
func (s *Service) LogSession(ctx context.Context, session training.WorkoutSession) (*training.WorkoutSession, error) {
	sets := training.Flatten(session.Exercises)
	if len(sets) == 0 {
		return nil, ErrEmptyWorkout
	}
	for _, set := range sets {
		if set.ExerciseID == "" {
			return nil, fmt.Errorf("%w: set without exercise id", ErrInvalidSession)
		}
		if !set.IsValidLoad() || (set.RestSeconds != nil && *set.RestSeconds < 0) {
			return nil, fmt.Errorf("%w: invalid set of %s", ErrInvalidSession, set.ExerciseID)
		}
	}

	now := s.now()
	if session.FinishedAt.IsZero() {
		session.FinishedAt = now
	}
	if session.FinishedAt.After(now) {
		return nil, fmt.Errorf("%w: finished in the future", ErrInvalidSession)
	}
	if !session.StartedAt.IsZero() && session.StartedAt.After(session.FinishedAt) {
		return nil, fmt.Errorf("%w: started after it finished", ErrInvalidSession)
	}

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	s.engine.FinalizeSession(&session, catalog)

	if err := s.persistSession(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Service) persistSession(ctx context.Context, session *training.WorkoutSession) error {
	id, err := s.sessions.Add(ctx, *session)
	if err != nil {
		return fmt.Errorf("add session: %w", err)
	}
	session.ID = id
	s.metricsManager.CounterSessionsFinished.Inc()
	s.bumpHistoryVersion(ctx)
	return nil
}

func (s *Service) bumpHistoryVersion(ctx context.Context) {
	if _, err := s.analysisCache.BumpHistoryVersion(ctx); err != nil {
		// stale analyses live on until their TTL
		log.Errorf("bump history version: %s", err)
	}
}

func (s *Service) GetSession(ctx context.Context, id int) (*training.WorkoutSession, error) {
	return s.sessions.Get(ctx, id)
}

func (s *Service) DeleteSession(ctx context.Context, id int) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	s.bumpHistoryVersion(ctx)
	return nil
}

func (s *Service) ListSessions(ctx context.Context, page, size int) ([]training.WorkoutSession, int, error) {
	return s.sessions.List(ctx, page, size)
}

// analysis

// ComputeVolume summarizes a list of exercises against the current catalog. Nothing is stored.
func (s *Service) ComputeVolume(ctx context.Context, exercises []training.ExerciseWithSets) (*gymstats.WorkoutSummary, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	summary := s.engine.Summarize(exercises, catalog)
	s.metricsManager.CounterComputations.WithLabelValues("volume").Inc()
	if len(summary.UnknownExercises) > 0 {
		s.metricsManager.CounterUnknownExercises.Add(float64(len(summary.UnknownExercises)))
		log.Debugf("volume summary: exercises not in catalog: %v", summary.UnknownExercises)
	}
	return &summary, nil
}

func (s *Service) FatigueAnalysis(ctx context.Context, windowDays int) (*recovery.FatigueAnalysis, error) {
	analysis, err := cachedAnalysis(ctx, s, analysisKindFatigue, windowDays,
		func(history []training.WorkoutSession, catalog training.Catalog, now time.Time) recovery.FatigueAnalysis {
			return s.engine.Recovery.Analyze(history, catalog, windowDays, now)
		},
	)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// RecoveryStates returns the per-muscle states of the fatigue analysis.
func (s *Service) RecoveryStates(ctx context.Context, windowDays int) ([]recovery.MuscleFatigue, error) {
	analysis, err := s.FatigueAnalysis(ctx, windowDays)
	if err != nil {
		return nil, err
	}
	return analysis.Muscles, nil
}

// MuscleRecovery returns the state of one muscle; muscles without history come back fully recovered.
func (s *Service) MuscleRecovery(ctx context.Context, muscle string, windowDays int) (*recovery.MuscleFatigue, error) {
	analysis, err := s.FatigueAnalysis(ctx, windowDays)
	if err != nil {
		return nil, err
	}
	if state, ok := analysis.Muscle(muscle); ok {
		return &state, nil
	}
	state := s.engine.MuscleState(nil, training.NewStaticCatalog(nil), muscle, windowDays, analysis.AnalysisDate)
	return &state, nil
}

func (s *Service) BalanceReport(ctx context.Context, windowDays int) (*balance.Report, error) {
	report, err := cachedAnalysis(ctx, s, analysisKindBalance, windowDays,
		func(history []training.WorkoutSession, catalog training.Catalog, now time.Time) balance.Report {
			return s.engine.Balance.Analyze(history, catalog, windowDays, now)
		},
	)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Progression suggests the next loads for the exercises of a session, the latest one when sessionID is 0.
func (s *Service) Progression(ctx context.Context, sessionID int) (_ *progression.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analysis.progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var session *training.WorkoutSession
	if sessionID > 0 {
		span.SetAttributes(attribute.Int("session_id", sessionID))
		session, err = s.sessions.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
	} else {
		latest, _, err := s.sessions.List(ctx, 1, 1)
		if err != nil {
			return nil, fmt.Errorf("load latest session: %w", err)
		}
		if len(latest) > 0 {
			session = &latest[0]
		}
	}

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	report := s.engine.Progression.ForSession(session, catalog)
	s.metricsManager.CounterComputations.WithLabelValues("progression").Inc()
	return &report, nil
}

// cachedAnalysis serves a history analysis from the cache, or loads the windowed
// history, computes and caches it. Cache failures only cost a recomputation.
func cachedAnalysis[T any](
	ctx context.Context,
	s *Service,
	kind string,
	windowDays int,
	compute func(history []training.WorkoutSession, catalog training.Catalog, now time.Time) T,
) (_ T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.analysis."+kind)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if windowDays <= 0 {
		windowDays = recovery.DefaultWindowDays
	}
	span.SetAttributes(attribute.Int("window_days", windowDays))

	var result T
	now := s.now()

	cacheKey := ""
	if version, err := s.analysisCache.HistoryVersion(ctx); err != nil {
		log.Errorf("analysis [%s]: %s", kind, err)
	} else {
		cacheKey = AnalysisKey(version, kind, windowDays, now)
		found, err := s.analysisCache.Get(ctx, cacheKey, &result)
		if err != nil {
			log.Errorf("analysis [%s]: %s", kind, err)
		}
		if found {
			s.metricsManager.CounterAnalysisCache.WithLabelValues("hit").Inc()
			return result, nil
		}
		s.metricsManager.CounterAnalysisCache.WithLabelValues("miss").Inc()
	}

	history, err := s.sessions.ListSince(ctx, now.AddDate(0, 0, -windowDays))
	if err != nil {
		return result, fmt.Errorf("load history: %w", err)
	}
	s.metricsManager.HistogramHistoryScan.Observe(float64(len(history)))

	catalog, err := s.Catalog(ctx)
	if err != nil {
		return result, err
	}

	result = compute(history, catalog, now)
	s.metricsManager.CounterComputations.WithLabelValues(kind).Inc()

	if cacheKey != "" {
		if err := s.analysisCache.Set(ctx, cacheKey, result); err != nil {
			log.Errorf("analysis [%s]: %s", kind, err)
		}
	}
	return result, nil
}
