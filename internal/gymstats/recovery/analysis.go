package recovery

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/muscles"
	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/gymstats/volume"
)

const DefaultWindowDays = 365

const maxRecommendedFocus = 3

type MuscleFatigue struct {
	MuscleRecoveryState
	EstimatedRecoveryDate *time.Time `json:"estimatedRecoveryDate,omitempty"`
	Recommendation        string     `json:"recommendation"`
}

type FatigueAnalysis struct {
	AnalysisDate         time.Time       `json:"analysisDate"`
	WindowDays           int             `json:"windowDays"`
	Muscles              []MuscleFatigue `json:"muscles"`
	OverallRecoveryScore float64         `json:"overallRecoveryScore"`
	RecommendedFocus     []string        `json:"recommendedFocus"`
	DeloadRecommended    bool            `json:"deloadRecommended"`
	ReadyForTraining     []string        `json:"readyForTraining"`
	NeedingRest          []string        `json:"needingRest"`
	Summary              string          `json:"summary"`
}

// Muscle returns the state of a single muscle, matched by its canonical key.
func (a FatigueAnalysis) Muscle(name string) (MuscleFatigue, bool) {
	key := muscles.Key(name)
	for _, m := range a.Muscles {
		if m.Muscle == key {
			return m, true
		}
	}
	return MuscleFatigue{}, false
}

type muscleHistory struct {
	lastTrained time.Time
	volume      float64
}

// Window returns the sessions dated within [now - windowDays, now].
func Window(history []training.WorkoutSession, windowDays int, now time.Time) []training.WorkoutSession {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	from := now.AddDate(0, 0, -windowDays)
	var sessions []training.WorkoutSession
	for _, s := range history {
		date := s.Date()
		if date.Before(from) || date.After(now) {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions
}

// Analyze computes the recovery state of every muscle trained within the window
// and derives the training recommendations from it.
func (m Model) Analyze(history []training.WorkoutSession, catalog training.Catalog, windowDays int, now time.Time) FatigueAnalysis {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	perMuscle := make(map[string]*muscleHistory)
	for _, session := range Window(history, windowDays, now) {
		date := session.Date()
		for muscle, v := range volume.ComputeExerciseVolumes(session.Exercises, catalog) {
			key := muscles.Key(muscle)
			if key == "" {
				continue
			}
			h, ok := perMuscle[key]
			if !ok {
				h = &muscleHistory{}
				perMuscle[key] = h
			}
			h.volume += v
			if date.After(h.lastTrained) {
				h.lastTrained = date
			}
		}
	}

	analysis := FatigueAnalysis{
		AnalysisDate:     now,
		WindowDays:       windowDays,
		Muscles:          make([]MuscleFatigue, 0, len(perMuscle)),
		RecommendedFocus: []string{},
		ReadyForTraining: []string{},
		NeedingRest:      []string{},
	}
	if len(perMuscle) == 0 {
		analysis.OverallRecoveryScore = 100
		analysis.Summary = "No recent training data available. All muscle groups ready for training."
		return analysis
	}

	keys := make([]string, 0, len(perMuscle))
	for key := range perMuscle {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	recoveryTotal := 0.0
	fatiguedCount := 0
	for _, key := range keys {
		h := perMuscle[key]
		lastTrained := h.lastTrained
		mf := MuscleFatigue{MuscleRecoveryState: m.Compute(key, &lastTrained, h.volume, now)}
		mf.DisplayName = muscles.DisplayName(key)
		mf.Recommendation = recommendation(mf.MuscleRecoveryState)
		if mf.Status != StatusRecovered {
			eta := m.EstimatedRecovery(lastTrained)
			mf.EstimatedRecoveryDate = &eta
		}

		recoveryTotal += 100 - mf.FatiguePercentage
		switch mf.Status {
		case StatusRecovered:
			analysis.ReadyForTraining = append(analysis.ReadyForTraining, key)
		case StatusFatigued:
			fatiguedCount++
			analysis.NeedingRest = append(analysis.NeedingRest, key)
		}
		if mf.FatiguePercentage >= m.DeloadFatigue {
			analysis.DeloadRecommended = true
		}
		analysis.Muscles = append(analysis.Muscles, mf)
	}

	analysis.OverallRecoveryScore = math.Round(10*recoveryTotal/float64(len(keys))) / 10
	if float64(fatiguedCount)/float64(len(keys)) > m.DeloadRatio {
		analysis.DeloadRecommended = true
	}
	analysis.RecommendedFocus = recommendedFocus(analysis.Muscles)
	analysis.Summary = summary(analysis.ReadyForTraining, analysis.NeedingRest)

	return analysis
}

func recommendedFocus(states []MuscleFatigue) []string {
	var candidates []MuscleFatigue
	for _, s := range states {
		if s.Status == StatusRecovered && s.DaysRested >= 2 {
			candidates = append(candidates, s)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DaysRested > candidates[j].DaysRested
	})
	focus := []string{}
	for i := 0; i < len(candidates) && i < maxRecommendedFocus; i++ {
		focus = append(focus, candidates[i].Muscle)
	}
	return focus
}

func recommendation(state MuscleRecoveryState) string {
	switch state.Status {
	case StatusFatigued:
		return "High fatigue detected. Consider rest or light training only."
	case StatusRecovering:
		return fmt.Sprintf("Partially recovered (%.0f%%). Light training OK.", 100-state.FatiguePercentage)
	default:
		return "Fully recovered and ready for training"
	}
}

func summary(ready, rest []string) string {
	switch {
	case len(ready) > len(rest):
		return fmt.Sprintf("Good recovery state. Ready to train %s.", joinFirst(ready, 2))
	case len(rest) > 0:
		return fmt.Sprintf("High fatigue in %s. Consider lighter training.", joinFirst(rest, 2))
	default:
		return "Balanced recovery state. Normal training recommended."
	}
}

func joinFirst(names []string, n int) string {
	if len(names) > n {
		names = names[:n]
	}
	display := make([]string, 0, len(names))
	for _, name := range names {
		display = append(display, muscles.DisplayName(name))
	}
	return strings.Join(display, ", ")
}
