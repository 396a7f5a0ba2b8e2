package workouts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitforge/internal/gymstats/recovery"
	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/telemetry/tracing"
	"github.com/2beens/fitforge/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultAnalysisWindowDays = 30
	MaxAnalysisWindowDays     = recovery.DefaultWindowDays
)

type ComputeVolumeRequest struct {
	Exercises []training.ExerciseWithSets `json:"exercises"`
}

type RecoveryResponse struct {
	WindowDays int                      `json:"windowDays"`
	Muscles    []recovery.MuscleFatigue `json:"muscles"`
}

// ParseWindow reads the window query param in days: 30 when missing, 1 to 365 otherwise.
func ParseWindow(raw string) (int, error) {
	if raw == "" {
		return DefaultAnalysisWindowDays, nil
	}
	window, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("window NaN")
	}
	if window < 1 || window > MaxAnalysisWindowDays {
		return 0, errors.New("window out of range [1, 365]")
	}
	return window, nil
}

func windowParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	window, err := ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return 0, false
	}
	return window, true
}

func (handler *Handler) HandleComputeVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analysis.volume")
	defer span.End()

	var req ComputeVolumeRequest
	if err := decodeBody(r, &req, false); err != nil {
		http.Error(w, "compute volume failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("exercises", len(req.Exercises)))

	summary, err := handler.service.ComputeVolume(ctx, req.Exercises)
	if err != nil {
		writeError(w, "compute volume", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, summary)
}

func (handler *Handler) HandleRecovery(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analysis.recovery")
	defer span.End()

	window, ok := windowParam(w, r)
	if !ok {
		return
	}

	states, err := handler.service.RecoveryStates(ctx, window)
	if err != nil {
		writeError(w, "recovery analysis", err)
		return
	}
	if states == nil {
		states = []recovery.MuscleFatigue{}
	}
	pkg.WriteJSONResponse(w, http.StatusOK, RecoveryResponse{
		WindowDays: window,
		Muscles:    states,
	})
}

func (handler *Handler) HandleMuscleRecovery(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analysis.musclerecovery")
	defer span.End()

	window, ok := windowParam(w, r)
	if !ok {
		return
	}
	muscle := mux.Vars(r)["muscle"]
	if muscle == "" {
		http.Error(w, "error, muscle empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("muscle", muscle))

	state, err := handler.service.MuscleRecovery(ctx, muscle, window)
	if err != nil {
		writeError(w, "muscle recovery", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, state)
}

func (handler *Handler) HandleFatigue(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analysis.fatigue")
	defer span.End()

	window, ok := windowParam(w, r)
	if !ok {
		return
	}

	analysis, err := handler.service.FatigueAnalysis(ctx, window)
	if err != nil {
		writeError(w, "fatigue analysis", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, analysis)
}

func (handler *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analysis.balance")
	defer span.End()

	window, ok := windowParam(w, r)
	if !ok {
		return
	}

	report, err := handler.service.BalanceReport(ctx, window)
	if err != nil {
		writeError(w, "balance analysis", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, report)
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analysis.progression")
	defer span.End()

	sessionID := 0
	if raw := r.URL.Query().Get("session_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			http.Error(w, "error, session_id must be a positive number", http.StatusBadRequest)
			return
		}
		sessionID = id
	}
	span.SetAttributes(attribute.Int("session_id", sessionID))

	report, err := handler.service.Progression(ctx, sessionID)
	if err != nil {
		writeError(w, "progression analysis", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, report)
}
