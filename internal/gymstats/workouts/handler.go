package workouts

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/fitforge/internal/gymstats/muscles"
	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/middleware"
	"github.com/2beens/fitforge/internal/telemetry/metrics"
	"github.com/2beens/fitforge/internal/telemetry/tracing"
	"github.com/2beens/fitforge/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

type ListSessionsResponse struct {
	Sessions []training.WorkoutSession `json:"sessions"`
	Total    int                       `json:"total"`
}

// AddDefinitionRequest accepts the engagement as a map, in the compact
// "Pectoralis_Major:_85%" text form, or both (the map wins on conflicts).
type AddDefinitionRequest struct {
	training.ExerciseDefinition
	MusclesUsed string `json:"musclesUsed,omitempty"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	analysisAllowedPerMin int,
) {
	r.HandleFunc("/gymstats/catalog", handler.HandleListCatalog).Methods("GET", "OPTIONS").Name("list-catalog")
	r.HandleFunc("/gymstats/catalog", handler.HandleAddDefinition).Methods("POST", "OPTIONS").Name("add-definition")
	r.HandleFunc("/gymstats/catalog/{id}", handler.HandleGetDefinition).Methods("GET", "OPTIONS").Name("get-definition")
	r.HandleFunc("/gymstats/catalog/{id}", handler.HandleDeleteDefinition).Methods("DELETE", "OPTIONS").Name("delete-definition")

	r.HandleFunc("/gymstats/drafts", handler.HandleCreateDraft).Methods("POST", "OPTIONS").Name("create-draft")
	r.HandleFunc("/gymstats/drafts/{id}", handler.HandleGetDraft).Methods("GET", "OPTIONS").Name("get-draft")
	r.HandleFunc("/gymstats/drafts/{id}", handler.HandleDeleteDraft).Methods("DELETE", "OPTIONS").Name("delete-draft")
	r.HandleFunc("/gymstats/drafts/{id}/exercises/{exid}", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("draft-add-exercise")
	r.HandleFunc("/gymstats/drafts/{id}/exercises/{exid}", handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("draft-remove-exercise")
	r.HandleFunc("/gymstats/drafts/{id}/exercises/{exid}/sets", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("draft-add-set")
	r.HandleFunc("/gymstats/drafts/{id}/exercises/{exid}/sets/{n}", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("draft-update-set")
	r.HandleFunc("/gymstats/drafts/{id}/exercises/{exid}/sets/{n}", handler.HandleRemoveSet).Methods("DELETE", "OPTIONS").Name("draft-remove-set")
	r.HandleFunc("/gymstats/drafts/{id}/summary", handler.HandleDraftSummary).Methods("GET", "OPTIONS").Name("draft-summary")
	r.HandleFunc("/gymstats/drafts/{id}/finish", handler.HandleFinishDraft).Methods("POST", "OPTIONS").Name("finish-draft")

	r.HandleFunc("/gymstats/sessions", handler.HandleLogSession).Methods("POST", "OPTIONS").Name("log-session")
	r.HandleFunc("/gymstats/sessions/list/page/{page}/size/{size}", handler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/gymstats/sessions/{id}", handler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/gymstats/sessions/{id}", handler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")

	analysisRouter := r.PathPrefix("/gymstats/analysis").Subrouter()
	if rateLimiter != nil {
		analysisRouter.Use(middleware.RateLimit(rateLimiter, "gymstats-analysis", analysisAllowedPerMin, metricsManager))
	}
	analysisRouter.HandleFunc("/volume", handler.HandleComputeVolume).Methods("POST", "OPTIONS").Name("analysis-volume")
	analysisRouter.HandleFunc("/recovery", handler.HandleRecovery).Methods("GET", "OPTIONS").Name("analysis-recovery")
	analysisRouter.HandleFunc("/recovery/{muscle}", handler.HandleMuscleRecovery).Methods("GET", "OPTIONS").Name("analysis-muscle-recovery")
	analysisRouter.HandleFunc("/fatigue", handler.HandleFatigue).Methods("GET", "OPTIONS").Name("analysis-fatigue")
	analysisRouter.HandleFunc("/balance", handler.HandleBalance).Methods("GET", "OPTIONS").Name("analysis-balance")
	analysisRouter.HandleFunc("/progression", handler.HandleProgression).Methods("GET", "OPTIONS").Name("analysis-progression")
}

// writeError maps service errors to http statuses.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrDefinitionNotFound),
		errors.Is(err, ErrDraftNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, training.ErrSetNotFound),
		errors.Is(err, training.ErrExerciseNotInDraft):
		log.Tracef("%s: %s", op, err)
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidDefinition),
		errors.Is(err, ErrInvalidSession),
		errors.Is(err, ErrEmptyWorkout),
		errors.Is(err, training.ErrInvalidSet):
		log.Tracef("%s: %s", op, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrDuplicateDefinition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}

func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// decodeBody decodes a JSON body. An empty body is allowed when optional is set.
func decodeBody(r *http.Request, dst any, optional bool) error {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		if optional {
			return nil
		}
		return errors.New("empty body")
	}
	if !isJSONRequest(r) {
		return errors.New("invalid content type")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			if optional {
				return nil
			}
			return errors.New("empty body")
		}
		return err
	}
	return nil
}

func pathInt(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, errors.New(name + " NaN")
	}
	return value, nil
}

func (handler *Handler) HandleListCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	defs, err := handler.service.ListDefinitions(ctx)
	if err != nil {
		writeError(w, "list catalog", err)
		return
	}
	if defs == nil {
		defs = []training.ExerciseDefinition{}
	}
	pkg.WriteJSONResponse(w, http.StatusOK, defs)
}

func (handler *Handler) HandleGetDefinition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	def, err := handler.service.GetDefinition(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get definition", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, def)
}

func (handler *Handler) HandleAddDefinition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.add")
	defer span.End()

	var req AddDefinitionRequest
	if err := decodeBody(r, &req, false); err != nil {
		log.Tracef("add definition, unmarshal json params: %s", err)
		http.Error(w, "add definition failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	def := req.ExerciseDefinition
	if req.MusclesUsed != "" {
		engagement := muscles.ParseEngagement(req.MusclesUsed)
		for muscle, pct := range def.MuscleEngagement {
			engagement[muscle] = pct
		}
		def.MuscleEngagement = engagement
	}

	added, err := handler.service.AddDefinition(ctx, def)
	if err != nil {
		writeError(w, "add definition", err)
		return
	}

	log.Debugf("new exercise definition added: %s", added.ID)
	pkg.WriteJSONResponse(w, http.StatusCreated, added)
}

func (handler *Handler) HandleDeleteDefinition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.service.DeleteDefinition(ctx, id); err != nil {
		writeError(w, "delete definition", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, DeleteResponse{DeletedID: id})
}

func (handler *Handler) HandleCreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.create")
	defer span.End()

	draft, err := handler.service.CreateDraft(ctx)
	if err != nil {
		writeError(w, "create draft", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, draft)
}

func (handler *Handler) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.get")
	defer span.End()

	draft, err := handler.service.GetDraft(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get draft", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, draft)
}

func (handler *Handler) HandleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.service.DeleteDraft(ctx, id); err != nil {
		writeError(w, "delete draft", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, DeleteResponse{DeletedID: id})
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.addexercise")
	defer span.End()

	vars := mux.Vars(r)
	draft, err := handler.service.AddExercise(ctx, vars["id"], vars["exid"])
	if err != nil {
		writeError(w, "add exercise", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, draft)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.removeexercise")
	defer span.End()

	vars := mux.Vars(r)
	draft, err := handler.service.RemoveExercise(ctx, vars["id"], vars["exid"])
	if err != nil {
		writeError(w, "remove exercise", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, draft)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.addset")
	defer span.End()

	var in training.SetInput
	if err := decodeBody(r, &in, true); err != nil {
		http.Error(w, "add set failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	draft, err := handler.service.AddSet(ctx, vars["id"], vars["exid"], in)
	if err != nil {
		writeError(w, "add set", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, draft)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.updateset")
	defer span.End()

	setNumber, err := pathInt(r, "n")
	if err != nil {
		http.Error(w, "error, set number NaN", http.StatusBadRequest)
		return
	}
	var in training.SetInput
	if err := decodeBody(r, &in, false); err != nil {
		http.Error(w, "update set failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	draft, err := handler.service.UpdateSet(ctx, vars["id"], vars["exid"], setNumber, in)
	if err != nil {
		writeError(w, "update set", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, draft)
}

func (handler *Handler) HandleRemoveSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.removeset")
	defer span.End()

	setNumber, err := pathInt(r, "n")
	if err != nil {
		http.Error(w, "error, set number NaN", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	draft, err := handler.service.RemoveSet(ctx, vars["id"], vars["exid"], setNumber)
	if err != nil {
		writeError(w, "remove set", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, draft)
}

func (handler *Handler) HandleDraftSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.summary")
	defer span.End()

	summary, err := handler.service.DraftSummary(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "draft summary", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, summary)
}

func (handler *Handler) HandleFinishDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.finish")
	defer span.End()

	session, err := handler.service.FinishDraft(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "finish draft", err)
		return
	}
	log.Debugf("draft finished into session %d", session.ID)
	pkg.WriteJSONResponse(w, http.StatusCreated, session)
}

func (handler *Handler) HandleLogSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.log")
	defer span.End()

	var session training.WorkoutSession
	if err := decodeBody(r, &session, false); err != nil {
		log.Tracef("log session, unmarshal json params: %s", err)
		http.Error(w, "log session failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := handler.service.LogSession(ctx, session)
	if err != nil {
		writeError(w, "log session", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusCreated, saved)
}

func (handler *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	session, err := handler.service.GetSession(ctx, id)
	if err != nil {
		writeError(w, "get session", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, session)
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
	defer span.End()

	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteSession(ctx, id); err != nil {
		writeError(w, "delete session", err)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, DeleteResponse{DeletedID: strconv.Itoa(id)})
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	page, err := pathInt(r, "page")
	if err != nil || page < 1 {
		http.Error(w, "error, invalid page", http.StatusBadRequest)
		return
	}
	size, err := pathInt(r, "size")
	if err != nil || size < 1 || size > 100 {
		http.Error(w, "error, invalid size", http.StatusBadRequest)
		return
	}

	sessions, total, err := handler.service.ListSessions(ctx, page, size)
	if err != nil {
		writeError(w, "list sessions", err)
		return
	}
	if sessions == nil {
		sessions = []training.WorkoutSession{}
	}
	pkg.WriteJSONResponse(w, http.StatusOK, ListSessionsResponse{
		Sessions: sessions,
		Total:    total,
	})
}
