package progression

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/training"
)

const (
	// DefaultTargetIncrease is the volume increase aimed for over the last session, in percent.
	DefaultTargetIncrease = 3.0
	// WeightStep is the smallest weight increment suggested, in pounds.
	WeightStep = 0.25
)

type OptionType string

const (
	OptionWeight OptionType = "weight"
	OptionReps   OptionType = "reps"
)

// Baseline is the averaged performance of one exercise in a session.
type Baseline struct {
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Volume float64 `json:"volume"`
}

type Option struct {
	Type        OptionType `json:"type"`
	Description string     `json:"description"`
	Sets        int        `json:"sets"`
	Reps        int        `json:"reps"`
	Weight      float64    `json:"weight"`
	Volume      float64    `json:"volume"`
	Increase    float64    `json:"increase"`
}

type ExerciseProgression struct {
	ExerciseID string   `json:"exerciseId"`
	Name       string   `json:"name"`
	Baseline   Baseline `json:"baseline"`
	Options    []Option `json:"options"`
}

type Report struct {
	SessionID      int                   `json:"sessionId,omitempty"`
	SessionDate    *time.Time            `json:"sessionDate,omitempty"`
	HasData        bool                  `json:"hasData"`
	TargetIncrease float64               `json:"targetIncrease"`
	Exercises      []ExerciseProgression `json:"exercises"`
}

// Calculator suggests the next session's load for each exercise of a session,
// either by adding weight or by adding reps.
type Calculator struct {
	targetIncrease float64
}

func NewCalculator(targetIncrease float64) *Calculator {
	if targetIncrease <= 0 {
		targetIncrease = DefaultTargetIncrease
	}
	return &Calculator{
		targetIncrease: targetIncrease,
	}
}

func (c *Calculator) TargetIncrease() float64 {
	return c.targetIncrease
}

// BaselineOf averages the completed sets of an exercise block. A block with no
// completed set is averaged over all its sets. Sets with an invalid load are skipped.
func BaselineOf(ex training.ExerciseWithSets) (Baseline, bool) {
	considered := make([]training.Set, 0, len(ex.Sets))
	for _, s := range ex.Sets {
		if s.Completed && s.IsValidLoad() {
			considered = append(considered, s)
		}
	}
	if len(considered) == 0 {
		for _, s := range ex.Sets {
			if s.IsValidLoad() {
				considered = append(considered, s)
			}
		}
	}
	if len(considered) == 0 {
		return Baseline{}, false
	}

	var b Baseline
	var reps, weight float64
	for _, s := range considered {
		reps += float64(s.Reps)
		weight += s.Weight
		b.Volume += s.Load()
	}
	n := float64(len(considered))
	b.Sets = len(considered)
	b.Reps = int(math.Round(reps / n))
	b.Weight = roundTo(weight/n, 1)
	return b, true
}

// Options returns the weight and reps options reaching the target increase.
// A baseline without volume has no options.
func (c *Calculator) Options(b Baseline) []Option {
	if b.Volume <= 0 || b.Sets <= 0 {
		return []Option{}
	}
	target := b.Volume * c.targetIncrease / 100

	options := make([]Option, 0, 2)
	if b.Reps > 0 {
		step := ceil(target/float64(b.Sets*b.Reps)/WeightStep) * WeightStep
		newWeight := b.Weight + step
		newVolume := float64(b.Sets*b.Reps) * newWeight
		options = append(options, Option{
			Type:        OptionWeight,
			Description: fmt.Sprintf("Add %glbs per set", step),
			Sets:        b.Sets,
			Reps:        b.Reps,
			Weight:      newWeight,
			Volume:      newVolume,
			Increase:    roundTo(100*(newVolume-b.Volume)/b.Volume, 1),
		})
	}
	if b.Weight > 0 {
		extra := int(ceil(target / (float64(b.Sets) * b.Weight)))
		newReps := b.Reps + extra
		newVolume := float64(b.Sets*newReps) * b.Weight
		unit := "reps"
		if extra == 1 {
			unit = "rep"
		}
		options = append(options, Option{
			Type:        OptionReps,
			Description: fmt.Sprintf("Add %d %s per set", extra, unit),
			Sets:        b.Sets,
			Reps:        newReps,
			Weight:      b.Weight,
			Volume:      newVolume,
			Increase:    roundTo(100*(newVolume-b.Volume)/b.Volume, 1),
		})
	}
	return options
}

// ForSession builds the progression report of a session; a nil session yields an empty report.
func (c *Calculator) ForSession(session *training.WorkoutSession, catalog training.Catalog) Report {
	report := Report{
		TargetIncrease: c.targetIncrease,
		Exercises:      []ExerciseProgression{},
	}
	if session == nil {
		return report
	}

	date := session.Date()
	report.SessionID = session.ID
	report.SessionDate = &date
	for _, ex := range session.Exercises {
		baseline, ok := BaselineOf(ex)
		if !ok {
			continue
		}
		name := ex.ExerciseID
		if catalog != nil {
			if def, found := catalog.Lookup(ex.ExerciseID); found && def.Name != "" {
				name = def.Name
			}
		}
		report.Exercises = append(report.Exercises, ExerciseProgression{
			ExerciseID: ex.ExerciseID,
			Name:       name,
			Baseline:   baseline,
			Options:    c.Options(baseline),
		})
	}
	report.HasData = len(report.Exercises) > 0
	return report
}

// ceil ignores float noise just above a whole number.
func ceil(v float64) float64 {
	return math.Ceil(v - 1e-9)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
