package training

import (
	"errors"
	"time"
)

var (
	ErrExerciseNotInDraft = errors.New("exercise not in draft")
	ErrSetNotFound        = errors.New("set not found")
	ErrInvalidSet         = errors.New("invalid set values")
)

// Draft is the in-progress workout a user is editing.
// Within every exercise block set numbers are kept as a contiguous 1..N sequence.
type Draft struct {
	ID        string             `json:"id"`
	StartedAt time.Time          `json:"startedAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Version   int64              `json:"version"`
	Exercises []ExerciseWithSets `json:"exercises"`
}

// SetInput holds the optional fields of a new or edited set.
// Nil fields keep the default (on add) or the current value (on update).
type SetInput struct {
	Weight      *float64 `json:"weight,omitempty"`
	Reps        *int     `json:"reps,omitempty"`
	RestSeconds *int     `json:"restSeconds,omitempty"`
	Completed   *bool    `json:"completed,omitempty"`
}

func (in SetInput) Validate() error {
	if in.Weight != nil && !(Set{Weight: *in.Weight}).IsValidLoad() {
		return ErrInvalidSet
	}
	if in.Reps != nil && *in.Reps < 0 {
		return ErrInvalidSet
	}
	if in.RestSeconds != nil && *in.RestSeconds < 0 {
		return ErrInvalidSet
	}
	return nil
}

func (in SetInput) apply(s *Set) {
	if in.Weight != nil {
		s.Weight = *in.Weight
	}
	if in.Reps != nil {
		s.Reps = *in.Reps
	}
	if in.RestSeconds != nil {
		rest := *in.RestSeconds
		s.RestSeconds = &rest
	}
	if in.Completed != nil {
		s.Completed = *in.Completed
	}
}

func (d *Draft) block(exerciseID string) (int, bool) {
	for i := range d.Exercises {
		if d.Exercises[i].ExerciseID == exerciseID {
			return i, true
		}
	}
	return -1, false
}

// AddSet appends a set to the exercise block of def, creating the block if needed.
// Missing input fields are taken from the defaults table.
func (d *Draft) AddSet(def ExerciseDefinition, defaults Defaults, in SetInput) (Set, error) {
	if err := in.Validate(); err != nil {
		return Set{}, err
	}

	i, ok := d.block(def.ID)
	if !ok {
		d.Exercises = append(d.Exercises, ExerciseWithSets{ExerciseID: def.ID})
		i = len(d.Exercises) - 1
	}

	set := defaults.NewSet(def, len(d.Exercises[i].Sets)+1)
	in.apply(&set)
	d.Exercises[i].Sets = append(d.Exercises[i].Sets, set)
	return set, nil
}

// AddExercise adds a new block for def with the default number of sets.
func (d *Draft) AddExercise(def ExerciseDefinition, defaults Defaults) error {
	count := defaults.SetsCount
	if count <= 0 {
		count = DefaultSetsCount
	}
	for i := 0; i < count; i++ {
		if _, err := d.AddSet(def, defaults, SetInput{}); err != nil {
			return err
		}
	}
	return nil
}

// UpdateSet edits a set in place.
func (d *Draft) UpdateSet(exerciseID string, setNumber int, in SetInput) (Set, error) {
	if err := in.Validate(); err != nil {
		return Set{}, err
	}
	i, ok := d.block(exerciseID)
	if !ok {
		return Set{}, ErrExerciseNotInDraft
	}
	sets := d.Exercises[i].Sets
	if setNumber < 1 || setNumber > len(sets) {
		return Set{}, ErrSetNotFound
	}
	in.apply(&sets[setNumber-1])
	return sets[setNumber-1], nil
}

// RemoveSet deletes a set and renumbers its siblings. A block left without sets is removed.
func (d *Draft) RemoveSet(exerciseID string, setNumber int) error {
	i, ok := d.block(exerciseID)
	if !ok {
		return ErrExerciseNotInDraft
	}
	sets := d.Exercises[i].Sets
	if setNumber < 1 || setNumber > len(sets) {
		return ErrSetNotFound
	}

	remaining := make([]Set, 0, len(sets)-1)
	remaining = append(remaining, sets[:setNumber-1]...)
	remaining = append(remaining, sets[setNumber:]...)
	Renumber(remaining)

	if len(remaining) == 0 {
		d.Exercises = append(d.Exercises[:i], d.Exercises[i+1:]...)
		return nil
	}
	d.Exercises[i].Sets = remaining
	return nil
}

// RemoveExercise drops a whole exercise block.
func (d *Draft) RemoveExercise(exerciseID string) error {
	i, ok := d.block(exerciseID)
	if !ok {
		return ErrExerciseNotInDraft
	}
	d.Exercises = append(d.Exercises[:i], d.Exercises[i+1:]...)
	return nil
}

// Renumber rewrites set numbers as 1..N in slice order.
func Renumber(sets []Set) {
	for i := range sets {
		sets[i].SetNumber = i + 1
	}
}

// ToSession turns the draft into a session and finalizes it.
func (d *Draft) ToSession(finishedAt time.Time, estimatedMinutes int) WorkoutSession {
	exercises := make([]ExerciseWithSets, 0, len(d.Exercises))
	for _, ex := range d.Exercises {
		sets := make([]Set, len(ex.Sets))
		copy(sets, ex.Sets)
		for i := range sets {
			sets[i].ExerciseID = ex.ExerciseID
		}
		exercises = append(exercises, ExerciseWithSets{
			ExerciseID: ex.ExerciseID,
			Sets:       sets,
		})
	}

	session := WorkoutSession{
		StartedAt:  d.StartedAt,
		FinishedAt: finishedAt,
		Exercises:  exercises,
	}
	session.Finalize(estimatedMinutes)
	return session
}
