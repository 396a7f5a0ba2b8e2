package mcp

import (
	"github.com/2beens/fitforge/internal/gymstats/workouts"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the MCP server with the gymstats tools. It is served over stdio by
// cmd/gymstats_mcp and mounted at /mcp on the main backend.
func NewServer(pool *pgxpool.Pool, workoutsService *workouts.Service) *mcp.Server {
	h := NewHandler(NewContextService(NewPoolSchemaRepo(pool), workoutsService))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitforge-gymstats",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "compute_muscle_volume",
		Description: "Computes per-muscle volume (weight x reps x engagement), normalized 0-100 volume, intensity and muscle group totals for a list of exercises with sets. Nothing is stored. Use to see which muscles a planned or finished workout hits.",
	}, h.ComputeMuscleVolumeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "estimate_workout_duration",
		Description: "Estimates the workout duration in minutes: 45s of work per set plus the rest of every set except the last (explicit rest or the equipment default).",
	}, h.EstimateWorkoutDurationTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_recovery_state",
		Description: "Returns fatigue percentage, days rested and status (fatigued, recovering, recovered) of one muscle, or of all trained muscles. Arg: optional muscle, optional window_days.",
	}, h.GetRecoveryStateTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fatigue_analysis",
		Description: "Returns the full fatigue analysis over the history window: per-muscle states, overall recovery score, recommended focus, deload flag and a summary.",
	}, h.GetFatigueAnalysisTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_balance",
		Description: "Returns the muscle group balance report: actual vs ideal volume distribution per group, balance score, risk level and recommendations.",
	}, h.GetMuscleBalanceTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progression_options",
		Description: "Returns progressive overload options for every exercise of a session (the latest one by default): the averaged baseline and two ways to reach a 3% volume increase, adding weight (0.25 lbs steps) or adding reps.",
	}, h.GetProgressionOptionsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercise_catalog",
		Description: "Returns the exercise definitions (id, name, category, equipment, difficulty, muscle engagement). Optional filters: category, equipment.",
	}, h.ListExerciseCatalogTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymstats_schema",
		Description: "Returns the DB schema of the gymstats tables: table names, columns, types, nullable, default.",
	}, h.GetGymstatsSchemaTool())

	return s
}
