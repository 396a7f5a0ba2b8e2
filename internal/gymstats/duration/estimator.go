package duration

import (
	"math"

	"github.com/2beens/fitforge/internal/gymstats/training"

	log "github.com/sirupsen/logrus"
)

const DefaultWorkSeconds = 45

// Estimator derives workout duration from planned sets.
// Each set costs WorkSeconds of work plus its rest time.
type Estimator struct {
	workSeconds int
	defaults    training.Defaults
}

func NewEstimator(workSeconds int, defaults training.Defaults) *Estimator {
	if workSeconds < 0 {
		workSeconds = DefaultWorkSeconds
	}
	return &Estimator{
		workSeconds: workSeconds,
		defaults:    defaults,
	}
}

func (e *Estimator) WorkSeconds() int {
	return e.workSeconds
}

// Seconds returns the total estimated seconds for all sets of all exercises.
func (e *Estimator) Seconds(exercises []training.ExerciseWithSets, catalog training.Catalog) int {
	total := 0
	for _, ex := range exercises {
		var def training.ExerciseDefinition
		found := false
		if catalog != nil {
			def, found = catalog.Lookup(ex.ExerciseID)
		}
		if !found {
			log.Tracef("duration: exercise [%s] not in catalog, using global rest default", ex.ExerciseID)
		}
		defaultRest := e.defaults.RestFor(def)
		for _, set := range ex.Sets {
			total += e.workSeconds + e.restFor(set, defaultRest)
		}
	}
	return total
}

// Estimate returns the estimated duration rounded to whole minutes.
func (e *Estimator) Estimate(exercises []training.ExerciseWithSets, catalog training.Catalog) int {
	return int(math.Round(float64(e.Seconds(exercises, catalog)) / 60))
}

func (e *Estimator) restFor(set training.Set, defaultRest int) int {
	if set.RestSeconds != nil && *set.RestSeconds >= 0 {
		return *set.RestSeconds
	}
	return defaultRest
}
