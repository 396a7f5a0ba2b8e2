package recovery

import (
	"math"
	"time"
)

type Status string

const (
	StatusRecovered  Status = "recovered"
	StatusRecovering Status = "recovering"
	StatusFatigued   Status = "fatigued"
)

// NeverTrainedDays is reported as DaysRested for muscles with no history.
const NeverTrainedDays = 99

// Model holds the decay thresholds and coefficients.
// The thresholds are crisp: the status flips exactly at FatiguedBelowDays and RecoveredFromDays.
type Model struct {
	FatiguedBelowDays int     `toml:"fatigued_below_days"`
	RecoveredFromDays int     `toml:"recovered_from_days"`
	FatiguedBase      float64 `toml:"fatigued_base"`
	VolumeDivisor     float64 `toml:"volume_divisor"`
	RecoveringBase    float64 `toml:"recovering_base"`
	RecoveringSlope   float64 `toml:"recovering_slope"`
	RecoveredBase     float64 `toml:"recovered_base"`
	RecoveredSlope    float64 `toml:"recovered_slope"`
	// DeloadFatigue is the single-muscle fatigue that triggers a deload recommendation.
	DeloadFatigue float64 `toml:"deload_fatigue"`
	// DeloadRatio is the share of fatigued muscles above which a deload is recommended.
	DeloadRatio float64 `toml:"deload_ratio"`
}

func DefaultModel() Model {
	return Model{
		FatiguedBelowDays: 1,
		RecoveredFromDays: 3,
		FatiguedBase:      80,
		VolumeDivisor:     1000,
		RecoveringBase:    60,
		RecoveringSlope:   15,
		RecoveredBase:     100,
		RecoveredSlope:    25,
		DeloadFatigue:     95,
		DeloadRatio:       0.6,
	}
}

// WithDefaults fills zero valued fields from DefaultModel.
func (m Model) WithDefaults() Model {
	d := DefaultModel()
	if m.FatiguedBelowDays <= 0 {
		m.FatiguedBelowDays = d.FatiguedBelowDays
	}
	if m.RecoveredFromDays <= 0 {
		m.RecoveredFromDays = d.RecoveredFromDays
	}
	if m.RecoveredFromDays < m.FatiguedBelowDays {
		m.RecoveredFromDays = m.FatiguedBelowDays
	}
	if m.FatiguedBase == 0 {
		m.FatiguedBase = d.FatiguedBase
	}
	if m.VolumeDivisor <= 0 {
		m.VolumeDivisor = d.VolumeDivisor
	}
	if m.RecoveringBase == 0 {
		m.RecoveringBase = d.RecoveringBase
	}
	if m.RecoveringSlope == 0 {
		m.RecoveringSlope = d.RecoveringSlope
	}
	if m.RecoveredBase == 0 {
		m.RecoveredBase = d.RecoveredBase
	}
	if m.RecoveredSlope == 0 {
		m.RecoveredSlope = d.RecoveredSlope
	}
	if m.DeloadFatigue <= 0 {
		m.DeloadFatigue = d.DeloadFatigue
	}
	if m.DeloadRatio <= 0 {
		m.DeloadRatio = d.DeloadRatio
	}
	return m
}

type MuscleRecoveryState struct {
	Muscle            string     `json:"muscle"`
	DisplayName       string     `json:"displayName,omitempty"`
	FatiguePercentage float64    `json:"fatiguePercentage"`
	LastTrained       *time.Time `json:"lastTrained,omitempty"`
	DaysRested        int        `json:"daysRested"`
	Status            Status     `json:"status"`
	Volume            float64    `json:"volume"`
}

// DaysRested returns the whole days elapsed since lastTrained, never negative.
func DaysRested(lastTrained *time.Time, now time.Time) int {
	if lastTrained == nil {
		return NeverTrainedDays
	}
	elapsed := now.Sub(*lastTrained)
	if elapsed <= 0 {
		return 0
	}
	return int(math.Floor(elapsed.Hours() / 24))
}

// Compute derives the recovery state of a single muscle.
func (m Model) Compute(muscle string, lastTrained *time.Time, accumulatedVolume float64, now time.Time) MuscleRecoveryState {
	state := MuscleRecoveryState{
		Muscle:     muscle,
		DaysRested: DaysRested(lastTrained, now),
		Status:     StatusRecovered,
	}
	if lastTrained == nil {
		return state
	}
	last := *lastTrained
	state.LastTrained = &last

	if math.IsNaN(accumulatedVolume) || accumulatedVolume < 0 {
		accumulatedVolume = 0
	}
	state.Volume = accumulatedVolume

	d := float64(state.DaysRested)
	var fatigue float64
	switch {
	case state.DaysRested < m.FatiguedBelowDays:
		state.Status = StatusFatigued
		fatigue = m.FatiguedBase + accumulatedVolume/m.VolumeDivisor
	case state.DaysRested < m.RecoveredFromDays:
		state.Status = StatusRecovering
		fatigue = m.RecoveringBase - m.RecoveringSlope*(d-float64(m.FatiguedBelowDays))
	default:
		state.Status = StatusRecovered
		fatigue = m.RecoveredBase - m.RecoveredSlope*d
	}
	state.FatiguePercentage = clamp(fatigue)
	return state
}

// EstimatedRecovery returns when a trained muscle is expected to reach the recovered state.
func (m Model) EstimatedRecovery(lastTrained time.Time) time.Time {
	return lastTrained.AddDate(0, 0, m.RecoveredFromDays)
}

func clamp(pct float64) float64 {
	switch {
	case math.IsNaN(pct) || pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}
