package volume

import (
	"math"
	"sort"

	"github.com/2beens/fitforge/internal/gymstats/muscles"
	"github.com/2beens/fitforge/internal/gymstats/training"

	log "github.com/sirupsen/logrus"
)

// ComputeMuscleVolumes sums weight x reps x engagement/100 per muscle over all sets.
// Sets referencing an unknown exercise, or carrying an invalid load, contribute nothing.
// Muscle keys are returned as the catalog spells them.
func ComputeMuscleVolumes(sets []training.Set, catalog training.Catalog) map[string]float64 {
	volumes := make(map[string]float64)
	for _, set := range sets {
		def, ok := lookup(catalog, set.ExerciseID)
		if !ok {
			log.Debugf("volume: unknown exercise [%s], set %d ignored", set.ExerciseID, set.SetNumber)
			continue
		}
		if !set.IsValidLoad() {
			log.Tracef("volume: invalid load for [%s] set %d: %v x %d", set.ExerciseID, set.SetNumber, set.Weight, set.Reps)
			continue
		}

		load := set.Load()
		for muscle, pct := range def.MuscleEngagement {
			pct, ok := muscles.ClampEngagement(pct)
			if !ok || pct == 0 {
				continue
			}
			volumes[muscle] += load * pct / 100
		}
	}
	return volumes
}

// ComputeExerciseVolumes is ComputeMuscleVolumes over exercise blocks.
func ComputeExerciseVolumes(exercises []training.ExerciseWithSets, catalog training.Catalog) map[string]float64 {
	return ComputeMuscleVolumes(training.Flatten(exercises), catalog)
}

// UnknownExercises returns the distinct exercise ids the catalog cannot resolve, sorted.
func UnknownExercises(sets []training.Set, catalog training.Catalog) []string {
	seen := make(map[string]bool)
	var unknown []string
	for _, set := range sets {
		if seen[set.ExerciseID] {
			continue
		}
		seen[set.ExerciseID] = true
		if _, ok := lookup(catalog, set.ExerciseID); !ok {
			unknown = append(unknown, set.ExerciseID)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func lookup(catalog training.Catalog, exerciseID string) (training.ExerciseDefinition, bool) {
	if catalog == nil || exerciseID == "" {
		return training.ExerciseDefinition{}, false
	}
	return catalog.Lookup(exerciseID)
}

// NormalizeVolumes scales volumes to 0-100 relative to the peak muscle.
// When the peak is not positive every muscle gets 0.
func NormalizeVolumes(raw map[string]float64) map[string]int {
	normalized := make(map[string]int, len(raw))
	peak := 0.0
	for _, v := range raw {
		if isFinite(v) && v > peak {
			peak = v
		}
	}
	for muscle, v := range raw {
		if peak <= 0 || !isFinite(v) || v <= 0 {
			normalized[muscle] = 0
			continue
		}
		normalized[muscle] = int(math.Round(100 * v / peak))
	}
	return normalized
}

// GroupVolumes rolls muscle volumes up into anatomical groups.
// Muscles that belong to no group are left out.
func GroupVolumes(raw map[string]float64) map[muscles.Group]float64 {
	groups := make(map[muscles.Group]float64, len(muscles.AllGroups))
	for _, g := range muscles.AllGroups {
		groups[g] = 0
	}
	for muscle, v := range raw {
		if !isFinite(v) || v <= 0 {
			continue
		}
		g, ok := muscles.GroupOf(muscle)
		if !ok {
			continue
		}
		groups[g] += v
	}
	return groups
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
