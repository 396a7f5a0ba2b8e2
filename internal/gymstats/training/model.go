package training

import (
	"math"
	"time"
)

type Category string

const (
	CategoryPush     Category = "push"
	CategoryPull     Category = "pull"
	CategoryLegs     Category = "legs"
	CategoryAbs      Category = "abs"
	CategoryFullBody Category = "full_body"
	CategoryCardio   Category = "cardio"
)

type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBand       Equipment = "band"
	EquipmentOther      Equipment = "other"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ExerciseDefinition is an immutable catalog entry.
// MuscleEngagement maps a muscle name to its engagement percentage (0-100);
// values do not need to sum up to 100.
type ExerciseDefinition struct {
	ID               string             `json:"id" yaml:"id"`
	Name             string             `json:"name" yaml:"name"`
	Category         Category           `json:"category" yaml:"category"`
	Equipment        Equipment          `json:"equipment" yaml:"equipment"`
	Difficulty       Difficulty         `json:"difficulty" yaml:"difficulty"`
	MuscleEngagement map[string]float64 `json:"muscleEngagement" yaml:"muscle_engagement"`
	CreatedAt        time.Time          `json:"createdAt" yaml:"-"`
}

// Set is a planned or logged unit of work for one exercise.
// Weight is in pounds and may be 0 for bodyweight work.
// RestSeconds is optional; a nil value falls back to the equipment default.
type Set struct {
	ExerciseID  string  `json:"exerciseId"`
	SetNumber   int     `json:"setNumber"`
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	RestSeconds *int    `json:"restSeconds,omitempty"`
	Completed   bool    `json:"completed"`
}

// IsValidLoad reports whether the set can take part in volume math.
// Negative or non-finite weight and negative reps are data quality gaps.
func (s Set) IsValidLoad() bool {
	if math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
		return false
	}
	return s.Weight >= 0 && s.Reps >= 0
}

// Load returns weight x reps, or 0 for sets with an invalid load.
func (s Set) Load() float64 {
	if !s.IsValidLoad() {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

// ExerciseWithSets is one exercise block of a draft or a session.
type ExerciseWithSets struct {
	ExerciseID string `json:"exerciseId"`
	Sets       []Set  `json:"sets"`
}

// Flatten returns all sets of all exercise blocks, with the block's exercise id
// filled in where a set does not carry its own.
func Flatten(exercises []ExerciseWithSets) []Set {
	total := 0
	for _, ex := range exercises {
		total += len(ex.Sets)
	}
	sets := make([]Set, 0, total)
	for _, ex := range exercises {
		for _, s := range ex.Sets {
			if s.ExerciseID == "" {
				s.ExerciseID = ex.ExerciseID
			}
			sets = append(sets, s)
		}
	}
	return sets
}

// WorkoutSession is a completed workout. After Finalize it is treated as immutable history.
type WorkoutSession struct {
	ID              int                `json:"id"`
	StartedAt       time.Time          `json:"startedAt"`
	FinishedAt      time.Time          `json:"finishedAt"`
	Exercises       []ExerciseWithSets `json:"exercises"`
	DurationMinutes int                `json:"durationMinutes"`
	TotalSets       int                `json:"totalSets"`
	TotalVolume     float64            `json:"totalVolume"`
}

// Date returns the point in time the session counts for in history analysis.
func (s WorkoutSession) Date() time.Time {
	if !s.FinishedAt.IsZero() {
		return s.FinishedAt
	}
	return s.StartedAt
}

// Finalize computes the session totals. The duration is the actual one when both
// start and finish are known, otherwise estimatedMinutes is used.
func (s *WorkoutSession) Finalize(estimatedMinutes int) {
	s.TotalSets = 0
	s.TotalVolume = 0
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			// zero and invalid sets still count as performed sets
			s.TotalSets++
			s.TotalVolume += set.Load()
		}
	}

	if !s.StartedAt.IsZero() && s.FinishedAt.After(s.StartedAt) {
		s.DurationMinutes = int(math.Round(s.FinishedAt.Sub(s.StartedAt).Minutes()))
		return
	}
	if estimatedMinutes < 0 {
		estimatedMinutes = 0
	}
	s.DurationMinutes = estimatedMinutes
}
