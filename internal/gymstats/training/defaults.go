package training

const (
	DefaultRestSeconds = 90
	DefaultSetsCount   = 3
)

// Load is the default weight and reps for a new planned set.
type Load struct {
	Weight float64 `toml:"weight" json:"weight"`
	Reps   int     `toml:"reps" json:"reps"`
}

// Defaults is the single table every caller resolves planned-set defaults from:
// rest time by equipment (falling back to movement category, then RestSeconds)
// and the starting load by equipment and difficulty.
type Defaults struct {
	RestSeconds     int
	SetsCount       int
	RestByEquipment map[Equipment]int
	RestByCategory  map[Category]int
	Loads           map[Equipment]map[Difficulty]Load
}

func StandardDefaults() Defaults {
	return Defaults{
		RestSeconds: DefaultRestSeconds,
		SetsCount:   DefaultSetsCount,
		RestByEquipment: map[Equipment]int{
			EquipmentBarbell:    120,
			EquipmentDumbbell:   90,
			EquipmentKettlebell: 90,
			EquipmentMachine:    75,
			EquipmentCable:      60,
			EquipmentBand:       60,
			EquipmentBodyweight: 60,
		},
		RestByCategory: map[Category]int{
			CategoryLegs:     120,
			CategoryFullBody: 120,
			CategoryPush:     90,
			CategoryPull:     90,
			CategoryAbs:      45,
			CategoryCardio:   30,
		},
		Loads: map[Equipment]map[Difficulty]Load{
			EquipmentBarbell: {
				DifficultyBeginner:     {Weight: 65, Reps: 12},
				DifficultyIntermediate: {Weight: 135, Reps: 8},
				DifficultyAdvanced:     {Weight: 185, Reps: 6},
			},
			EquipmentDumbbell: {
				DifficultyBeginner:     {Weight: 15, Reps: 12},
				DifficultyIntermediate: {Weight: 30, Reps: 10},
				DifficultyAdvanced:     {Weight: 50, Reps: 8},
			},
			EquipmentKettlebell: {
				DifficultyBeginner:     {Weight: 18, Reps: 12},
				DifficultyIntermediate: {Weight: 35, Reps: 10},
				DifficultyAdvanced:     {Weight: 53, Reps: 8},
			},
			EquipmentMachine: {
				DifficultyBeginner:     {Weight: 50, Reps: 12},
				DifficultyIntermediate: {Weight: 90, Reps: 10},
				DifficultyAdvanced:     {Weight: 130, Reps: 8},
			},
			EquipmentCable: {
				DifficultyBeginner:     {Weight: 30, Reps: 12},
				DifficultyIntermediate: {Weight: 50, Reps: 10},
				DifficultyAdvanced:     {Weight: 70, Reps: 8},
			},
			EquipmentBodyweight: {
				DifficultyBeginner:     {Weight: 0, Reps: 10},
				DifficultyIntermediate: {Weight: 0, Reps: 12},
				DifficultyAdvanced:     {Weight: 0, Reps: 15},
			},
		},
	}
}

// RestFor resolves the default rest time for an exercise.
func (d Defaults) RestFor(def ExerciseDefinition) int {
	if rest, ok := d.RestByEquipment[def.Equipment]; ok && rest >= 0 {
		return rest
	}
	if rest, ok := d.RestByCategory[def.Category]; ok && rest >= 0 {
		return rest
	}
	if d.RestSeconds < 0 {
		return 0
	}
	return d.RestSeconds
}

// LoadFor resolves the default starting load for an exercise.
// Unknown difficulties use the intermediate load; unknown equipment gets the
// barbell intermediate load, bodyweight always gets 0 weight.
func (d Defaults) LoadFor(def ExerciseDefinition) Load {
	byDifficulty, ok := d.Loads[def.Equipment]
	if !ok {
		byDifficulty = d.Loads[EquipmentBarbell]
	}
	load, ok := byDifficulty[def.Difficulty]
	if !ok {
		load = byDifficulty[DifficultyIntermediate]
	}
	if def.Equipment == EquipmentBodyweight {
		load.Weight = 0
	}
	if load.Reps <= 0 {
		load.Reps = 8
	}
	return load
}

// NewSet builds a planned set for def from the defaults table.
func (d Defaults) NewSet(def ExerciseDefinition, setNumber int) Set {
	load := d.LoadFor(def)
	rest := d.RestFor(def)
	return Set{
		ExerciseID:  def.ID,
		SetNumber:   setNumber,
		Weight:      load.Weight,
		Reps:        load.Reps,
		RestSeconds: &rest,
	}
}
