package volume

import (
	"sort"

	"github.com/2beens/fitforge/internal/gymstats/muscles"
)

type Intensity string

const (
	IntensityNone     Intensity = "none"
	IntensityLow      Intensity = "low"
	IntensityMedium   Intensity = "medium"
	IntensityHigh     Intensity = "high"
	IntensityVeryHigh Intensity = "very_high"
)

// ClassifyIntensity buckets a normalized volume. Values outside 0-100 are clamped first.
func ClassifyIntensity(normalized int) Intensity {
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 100 {
		normalized = 100
	}

	switch {
	case normalized == 0:
		return IntensityNone
	case normalized < 30:
		return IntensityLow
	case normalized < 60:
		return IntensityMedium
	case normalized < 90:
		return IntensityHigh
	default:
		return IntensityVeryHigh
	}
}

type MuscleVolumeEntry struct {
	Muscle           string        `json:"muscle"`
	DisplayName      string        `json:"displayName"`
	Group            muscles.Group `json:"group,omitempty"`
	RawVolume        float64       `json:"rawVolume"`
	NormalizedVolume int           `json:"normalizedVolume"`
	Intensity        Intensity     `json:"intensity"`
}

// BuildEntries normalizes and classifies raw volumes, highest volume first.
func BuildEntries(raw map[string]float64) []MuscleVolumeEntry {
	normalized := NormalizeVolumes(raw)
	entries := make([]MuscleVolumeEntry, 0, len(raw))
	for muscle, v := range raw {
		if !isFinite(v) || v < 0 {
			v = 0
		}
		group, _ := muscles.GroupOf(muscle)
		entries = append(entries, MuscleVolumeEntry{
			Muscle:           muscle,
			DisplayName:      muscles.DisplayName(muscle),
			Group:            group,
			RawVolume:        v,
			NormalizedVolume: normalized[muscle],
			Intensity:        ClassifyIntensity(normalized[muscle]),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].RawVolume != entries[j].RawVolume {
			return entries[i].RawVolume > entries[j].RawVolume
		}
		return entries[i].Muscle < entries[j].Muscle
	})
	return entries
}
