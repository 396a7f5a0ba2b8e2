package gymstats

import (
	"time"

	"github.com/2beens/fitforge/internal/config"
	"github.com/2beens/fitforge/internal/gymstats/balance"
	"github.com/2beens/fitforge/internal/gymstats/duration"
	"github.com/2beens/fitforge/internal/gymstats/muscles"
	"github.com/2beens/fitforge/internal/gymstats/progression"
	"github.com/2beens/fitforge/internal/gymstats/recovery"
	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/gymstats/volume"
)

// Engine bundles the configured models. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	Defaults training.Defaults
	Duration *duration.Estimator
	Recovery recovery.Model
	Balance  *balance.Analyzer

	Progression *progression.Calculator
}

func NewEngine(cfg config.Engine) *Engine {
	defaults := cfg.Defaults()
	workSeconds := cfg.WorkSeconds
	if workSeconds <= 0 {
		workSeconds = duration.DefaultWorkSeconds
	}
	return &Engine{
		Defaults: defaults,
		Duration: duration.NewEstimator(workSeconds, defaults),
		Recovery: cfg.Recovery.WithDefaults(),
		Balance:  balance.NewAnalyzer(cfg.Ideal(), cfg.BalanceTolerance, cfg.NeglectDays),

		Progression: progression.NewCalculator(cfg.ProgressionIncrease),
	}
}

// NewDefaultEngine builds an engine with all the standard constants.
func NewDefaultEngine() *Engine {
	return NewEngine(config.Engine{})
}

type WorkoutSummary struct {
	Volumes          []volume.MuscleVolumeEntry `json:"volumes"`
	Groups           map[muscles.Group]float64  `json:"groups"`
	DurationMinutes  int                        `json:"durationMinutes"`
	TotalSets        int                        `json:"totalSets"`
	TotalVolume      float64                    `json:"totalVolume"`
	UnknownExercises []string                   `json:"unknownExercises,omitempty"`
}

// Summarize computes the volume entries, group roll-up and duration estimate of a list of exercises.
func (e *Engine) Summarize(exercises []training.ExerciseWithSets, catalog training.Catalog) WorkoutSummary {
	sets := training.Flatten(exercises)
	raw := volume.ComputeMuscleVolumes(sets, catalog)

	summary := WorkoutSummary{
		Volumes:          volume.BuildEntries(raw),
		Groups:           volume.GroupVolumes(raw),
		DurationMinutes:  e.Duration.Estimate(exercises, catalog),
		TotalSets:        len(sets),
		UnknownExercises: volume.UnknownExercises(sets, catalog),
	}
	for _, s := range sets {
		summary.TotalVolume += s.Load()
	}
	return summary
}

// FinishDraft turns a draft into a finalized session.
func (e *Engine) FinishDraft(draft *training.Draft, catalog training.Catalog, finishedAt time.Time) training.WorkoutSession {
	return draft.ToSession(finishedAt, e.Duration.Estimate(draft.Exercises, catalog))
}

// FinalizeSession computes the totals of a session logged directly.
func (e *Engine) FinalizeSession(session *training.WorkoutSession, catalog training.Catalog) {
	for i := range session.Exercises {
		for j := range session.Exercises[i].Sets {
			if session.Exercises[i].Sets[j].ExerciseID == "" {
				session.Exercises[i].Sets[j].ExerciseID = session.Exercises[i].ExerciseID
			}
		}
		training.Renumber(session.Exercises[i].Sets)
	}
	session.Finalize(e.Duration.Estimate(session.Exercises, catalog))
}

// MuscleState returns the recovery state of one muscle, trained or not, within the window.
func (e *Engine) MuscleState(history []training.WorkoutSession, catalog training.Catalog, muscle string, windowDays int, now time.Time) recovery.MuscleFatigue {
	analysis := e.Recovery.Analyze(history, catalog, windowDays, now)
	if state, ok := analysis.Muscle(muscle); ok {
		return state
	}
	key := muscles.Key(muscle)
	state := recovery.MuscleFatigue{MuscleRecoveryState: e.Recovery.Compute(key, nil, 0, now)}
	state.DisplayName = muscles.DisplayName(key)
	state.Recommendation = "Fully recovered and ready for training"
	return state
}
