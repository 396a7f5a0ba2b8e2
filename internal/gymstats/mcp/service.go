package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/fitforge/internal/gymstats"
	"github.com/2beens/fitforge/internal/gymstats/balance"
	"github.com/2beens/fitforge/internal/gymstats/progression"
	"github.com/2beens/fitforge/internal/gymstats/recovery"
	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/gymstats/workouts"
)

// workoutsService is the part of workouts.Service the tools need.
type workoutsService interface {
	Engine() *gymstats.Engine
	Catalog(ctx context.Context) (*training.StaticCatalog, error)
	ComputeVolume(ctx context.Context, exercises []training.ExerciseWithSets) (*gymstats.WorkoutSummary, error)
	FatigueAnalysis(ctx context.Context, windowDays int) (*recovery.FatigueAnalysis, error)
	MuscleRecovery(ctx context.Context, muscle string, windowDays int) (*recovery.MuscleFatigue, error)
	BalanceReport(ctx context.Context, windowDays int) (*balance.Report, error)
	Progression(ctx context.Context, sessionID int) (*progression.Report, error)
}

var _ workoutsService = (*workouts.Service)(nil)

// contextService is what the tool handlers call.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListCatalog(ctx context.Context, filter CatalogFilter) ([]training.ExerciseDefinition, error)
	ComputeVolume(ctx context.Context, exercises []training.ExerciseWithSets) (*gymstats.WorkoutSummary, error)
	EstimateDuration(ctx context.Context, exercises []training.ExerciseWithSets) (*DurationEstimate, error)
	RecoveryState(ctx context.Context, muscle string, windowDays int) (any, error)
	FatigueAnalysis(ctx context.Context, windowDays int) (*recovery.FatigueAnalysis, error)
	MuscleBalance(ctx context.Context, windowDays int) (*balance.Report, error)
	Progression(ctx context.Context, sessionID int) (*progression.Report, error)
}

type CatalogFilter struct {
	Category  training.Category
	Equipment training.Equipment
}

type DurationEstimate struct {
	Minutes          int      `json:"minutes"`
	Seconds          int      `json:"seconds"`
	TotalSets        int      `json:"totalSets"`
	UnknownExercises []string `json:"unknownExercises,omitempty"`
}

// ContextService adapts the workouts service and the schema repo to the tools.
type ContextService struct {
	schema   SchemaRepo
	workouts workoutsService
}

func NewContextService(schemaRepo SchemaRepo, workoutsService workoutsService) *ContextService {
	return &ContextService{
		schema:   schemaRepo,
		workouts: workoutsService,
	}
}

// GetSchema returns the gymstats tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetGymstatsColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatGymstatsSchema(cols), nil
}

func formatGymstatsSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymstats DB Schema\n\nNo gymstats tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gymstats DB Schema\n\n")
	fmt.Fprintf(&b, "Tables: %s (schema: public).\n", strings.Join(workouts.Tables, ", "))
	for _, tableName := range tableOrder {
		b.WriteString("\n## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|---------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
	}
	return b.String()
}

func (s *ContextService) ListCatalog(ctx context.Context, filter CatalogFilter) ([]training.ExerciseDefinition, error) {
	catalog, err := s.workouts.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	defs := make([]training.ExerciseDefinition, 0, catalog.Len())
	for _, def := range catalog.Definitions() {
		if filter.Category != "" && !strings.EqualFold(string(def.Category), string(filter.Category)) {
			continue
		}
		if filter.Equipment != "" && !strings.EqualFold(string(def.Equipment), string(filter.Equipment)) {
			continue
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (s *ContextService) ComputeVolume(ctx context.Context, exercises []training.ExerciseWithSets) (*gymstats.WorkoutSummary, error) {
	return s.workouts.ComputeVolume(ctx, exercises)
}

func (s *ContextService) EstimateDuration(ctx context.Context, exercises []training.ExerciseWithSets) (*DurationEstimate, error) {
	catalog, err := s.workouts.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	engine := s.workouts.Engine()
	sets := training.Flatten(exercises)
	var unknown []string
	seen := make(map[string]bool)
	for _, set := range sets {
		if _, ok := catalog.Lookup(set.ExerciseID); !ok && !seen[set.ExerciseID] {
			seen[set.ExerciseID] = true
			unknown = append(unknown, set.ExerciseID)
		}
	}
	return &DurationEstimate{
		Minutes:          engine.Duration.Estimate(exercises, catalog),
		Seconds:          engine.Duration.Seconds(exercises, catalog),
		TotalSets:        len(sets),
		UnknownExercises: unknown,
	}, nil
}

// RecoveryState returns the state of one muscle, or all muscles when muscle is empty.
func (s *ContextService) RecoveryState(ctx context.Context, muscle string, windowDays int) (any, error) {
	if strings.TrimSpace(muscle) != "" {
		return s.workouts.MuscleRecovery(ctx, muscle, windowDays)
	}
	analysis, err := s.workouts.FatigueAnalysis(ctx, windowDays)
	if err != nil {
		return nil, err
	}
	return analysis.Muscles, nil
}

func (s *ContextService) FatigueAnalysis(ctx context.Context, windowDays int) (*recovery.FatigueAnalysis, error) {
	return s.workouts.FatigueAnalysis(ctx, windowDays)
}

func (s *ContextService) MuscleBalance(ctx context.Context, windowDays int) (*balance.Report, error) {
	return s.workouts.BalanceReport(ctx, windowDays)
}

func (s *ContextService) Progression(ctx context.Context, sessionID int) (*progression.Report, error) {
	return s.workouts.Progression(ctx, sessionID)
}
