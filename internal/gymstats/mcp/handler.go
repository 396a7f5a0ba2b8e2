package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/gymstats/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler parses the tool input, calls the service and formats the result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// windowDays keeps tool input in the same range as the HTTP window param.
func windowDays(days int) (int, bool) {
	if days == 0 {
		return workouts.DefaultAnalysisWindowDays, true
	}
	if days < 1 || days > workouts.MaxAnalysisWindowDays {
		return 0, false
	}
	return days, true
}

const invalidWindow = "Invalid window_days: use 1 to 365"

func (h *Handler) GetGymstatsSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type CatalogInput struct {
	Category  string `json:"category,omitempty" jsonschema:"Filter by category (push, pull, legs, abs, full_body, cardio)"`
	Equipment string `json:"equipment,omitempty" jsonschema:"Filter by equipment (barbell, dumbbell, machine, cable, bodyweight, ...)"`
}

func (h *Handler) ListExerciseCatalogTool() func(context.Context, *mcp.CallToolRequest, CatalogInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CatalogInput) (*mcp.CallToolResult, any, error) {
		defs, err := h.service.ListCatalog(ctx, CatalogFilter{
			Category:  training.Category(in.Category),
			Equipment: training.Equipment(in.Equipment),
		})
		if err != nil {
			return errorResult("Error listing catalog: " + err.Error()), nil, nil
		}
		return jsonResult(defs), nil, nil
	}
}

// WorkoutInput carries the exercises of a planned or performed workout.
type WorkoutInput struct {
	Exercises []training.ExerciseWithSets `json:"exercises" jsonschema:"Exercise blocks: exerciseId and sets (weight in lbs, reps, optional restSeconds)"`
}

func (h *Handler) ComputeMuscleVolumeTool() func(context.Context, *mcp.CallToolRequest, WorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutInput) (*mcp.CallToolResult, any, error) {
		if len(in.Exercises) == 0 {
			return errorResult("No exercises given"), nil, nil
		}
		summary, err := h.service.ComputeVolume(ctx, in.Exercises)
		if err != nil {
			return errorResult("Error computing volume: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

func (h *Handler) EstimateWorkoutDurationTool() func(context.Context, *mcp.CallToolRequest, WorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutInput) (*mcp.CallToolResult, any, error) {
		estimate, err := h.service.EstimateDuration(ctx, in.Exercises)
		if err != nil {
			return errorResult("Error estimating duration: " + err.Error()), nil, nil
		}
		return jsonResult(estimate), nil, nil
	}
}

type WindowInput struct {
	WindowDays int `json:"window_days,omitempty" jsonschema:"History window in days (1-365, default 30)"`
}

type RecoveryInput struct {
	Muscle     string `json:"muscle,omitempty" jsonschema:"Single muscle (e.g. Quadriceps); all trained muscles when empty"`
	WindowDays int    `json:"window_days,omitempty" jsonschema:"History window in days (1-365, default 30)"`
}

func (h *Handler) GetRecoveryStateTool() func(context.Context, *mcp.CallToolRequest, RecoveryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RecoveryInput) (*mcp.CallToolResult, any, error) {
		days, ok := windowDays(in.WindowDays)
		if !ok {
			return errorResult(invalidWindow), nil, nil
		}
		state, err := h.service.RecoveryState(ctx, in.Muscle, days)
		if err != nil {
			return errorResult("Error fetching recovery state: " + err.Error()), nil, nil
		}
		return jsonResult(state), nil, nil
	}
}

func (h *Handler) GetFatigueAnalysisTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WindowInput) (*mcp.CallToolResult, any, error) {
		days, ok := windowDays(in.WindowDays)
		if !ok {
			return errorResult(invalidWindow), nil, nil
		}
		analysis, err := h.service.FatigueAnalysis(ctx, days)
		if err != nil {
			return errorResult("Error analyzing fatigue: " + err.Error()), nil, nil
		}
		return jsonResult(analysis), nil, nil
	}
}

func (h *Handler) GetMuscleBalanceTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WindowInput) (*mcp.CallToolResult, any, error) {
		days, ok := windowDays(in.WindowDays)
		if !ok {
			return errorResult(invalidWindow), nil, nil
		}
		report, err := h.service.MuscleBalance(ctx, days)
		if err != nil {
			return errorResult("Error analyzing balance: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

type ProgressionInput struct {
	SessionID int `json:"session_id,omitempty" jsonschema:"Session to progress from; the latest session when empty"`
}

func (h *Handler) GetProgressionOptionsTool() func(context.Context, *mcp.CallToolRequest, ProgressionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressionInput) (*mcp.CallToolResult, any, error) {
		if in.SessionID < 0 {
			return errorResult("Invalid session_id: must be positive"), nil, nil
		}
		report, err := h.service.Progression(ctx, in.SessionID)
		if err != nil {
			return errorResult("Error computing progression: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}
