//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fitforge/internal/gymstats"
	"github.com/2beens/fitforge/internal/gymstats/balance"
	"github.com/2beens/fitforge/internal/gymstats/progression"
	"github.com/2beens/fitforge/internal/gymstats/recovery"
	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/gymstats/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestCatalog() {
	t := s.T()
	ctx := context.Background()

	resp := doRequest(ctx, t, http.MethodGet, "/gymstats/catalog", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var defs []training.ExerciseDefinition
	resp.decode(t, &defs)
	assert.GreaterOrEqual(t, len(defs), 11)

	resp = doRequest(ctx, t, http.MethodGet, "/gymstats/catalog/squat", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var squat training.ExerciseDefinition
	resp.decode(t, &squat)
	assert.Equal(t, 90.0, squat.MuscleEngagement["Quadriceps"])

	newID := fmt.Sprintf("ex_%s", gofakeit.LetterN(8))
	newDef := workouts.AddDefinitionRequest{
		ExerciseDefinition: training.ExerciseDefinition{
			ID:         newID,
			Name:       gofakeit.Name(),
			Category:   training.CategoryPull,
			Equipment:  training.EquipmentCable,
			Difficulty: training.DifficultyBeginner,
		},
		MusclesUsed: "Latissimus_Dorsi:_75%,_Biceps_Brachii:_35%",
	}

	resp = doRequest(ctx, t, http.MethodPost, "/gymstats/catalog", newDef, false)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(ctx, t, http.MethodPost, "/gymstats/catalog", newDef, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	resp = doRequest(ctx, t, http.MethodPost, "/gymstats/catalog", newDef, true)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// new definitions show up right away
	resp = doRequest(ctx, t, http.MethodGet, "/gymstats/catalog/"+newID, nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(ctx, t, http.MethodDelete, "/gymstats/catalog/"+newID, nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doRequest(ctx, t, http.MethodGet, "/gymstats/catalog/"+newID, nil, false)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestComputeVolume() {
	t := s.T()
	ctx := context.Background()

	req := workouts.ComputeVolumeRequest{
		Exercises: []training.ExerciseWithSets{
			{
				ExerciseID: "squat",
				Sets: []training.Set{
					{Weight: 225, Reps: 5, Completed: true},
					{Weight: 225, Reps: 5, Completed: true},
				},
			},
			{
				ExerciseID: "not_in_catalog",
				Sets:       []training.Set{{Weight: 10, Reps: 10}},
			},
		},
	}

	// open route, no token needed
	resp := doRequest(ctx, t, http.MethodPost, "/gymstats/analysis/volume", req, false)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	var summary gymstats.WorkoutSummary
	resp.decode(t, &summary)
	assert.Equal(t, 3, summary.TotalSets)
	assert.Equal(t, []string{"not_in_catalog"}, summary.UnknownExercises)
	require.NotEmpty(t, summary.Volumes)
	assert.Equal(t, "Quadriceps", summary.Volumes[0].Muscle)
	assert.Greater(t, summary.Groups["Legs"], 0.0)
}

func (s *IntegrationTestSuite) TestDraftToSessionFlow() {
	t := s.T()
	ctx := context.Background()

	resp := doRequest(ctx, t, http.MethodPost, "/gymstats/drafts", nil, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	var draft training.Draft
	resp.decode(t, &draft)
	require.NotEmpty(t, draft.ID)
	draftPath := "/gymstats/drafts/" + draft.ID

	resp = doRequest(ctx, t, http.MethodPost, draftPath+"/exercises/squat", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	resp.decode(t, &draft)
	require.Len(t, draft.Exercises, 1)
	require.Len(t, draft.Exercises[0].Sets, 3)

	weight, reps := 185.0, 8
	resp = doRequest(ctx, t, http.MethodPut, draftPath+"/exercises/squat/sets/2",
		training.SetInput{Weight: &weight, Reps: &reps}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	resp.decode(t, &draft)
	assert.Equal(t, 185.0, draft.Exercises[0].Sets[1].Weight)

	resp = doRequest(ctx, t, http.MethodPost, draftPath+"/exercises/bench_press/sets", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	resp = doRequest(ctx, t, http.MethodGet, draftPath+"/summary", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary gymstats.WorkoutSummary
	resp.decode(t, &summary)
	assert.Equal(t, 4, summary.TotalSets)
	assert.Greater(t, summary.DurationMinutes, 0)

	resp = doRequest(ctx, t, http.MethodPost, draftPath+"/finish", nil, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	var session training.WorkoutSession
	resp.decode(t, &session)
	require.Greater(t, session.ID, 0)
	assert.Equal(t, 4, session.TotalSets)

	var storedSets int
	require.NoError(t, s.SQL.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workout_set WHERE session_id = $1`, session.ID,
	).Scan(&storedSets))
	assert.Equal(t, 4, storedSets)

	// the draft is gone once finished
	resp = doRequest(ctx, t, http.MethodGet, draftPath, nil, false)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(ctx, t, http.MethodGet, fmt.Sprintf("/gymstats/sessions/%d", session.ID), nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stored training.WorkoutSession
	resp.decode(t, &stored)
	require.Len(t, stored.Exercises, 2)
	assert.Equal(t, "squat", stored.Exercises[0].ExerciseID)

	resp = doRequest(ctx, t, http.MethodGet, "/gymstats/analysis/recovery/quadriceps?window=7", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	var quads recovery.MuscleFatigue
	resp.decode(t, &quads)
	assert.Equal(t, recovery.StatusFatigued, quads.Status)
	assert.Greater(t, quads.FatiguePercentage, 0.0)

	resp = doRequest(ctx, t, http.MethodGet, fmt.Sprintf("/gymstats/analysis/progression?session_id=%d", session.ID), nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	var next progression.Report
	resp.decode(t, &next)
	assert.Equal(t, session.ID, next.SessionID)
	require.Len(t, next.Exercises, 2)
	assert.Equal(t, "squat", next.Exercises[0].ExerciseID)
	assert.Len(t, next.Exercises[0].Options, 2)

	resp = doRequest(ctx, t, http.MethodGet, "/gymstats/analysis/fatigue", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fatigue recovery.FatigueAnalysis
	resp.decode(t, &fatigue)
	assert.Equal(t, 30, fatigue.WindowDays)
	assert.NotEmpty(t, fatigue.Muscles)

	resp = doRequest(ctx, t, http.MethodGet, "/gymstats/analysis/balance?window=90", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report balance.Report
	resp.decode(t, &report)
	assert.True(t, report.HasData)
	assert.Equal(t, 90, report.WindowDays)

	resp = doRequest(ctx, t, http.MethodDelete, fmt.Sprintf("/gymstats/sessions/%d", session.ID), nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.SQL.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workout_set WHERE session_id = $1`, session.ID,
	).Scan(&storedSets))
	assert.Zero(t, storedSets)

	// the history version bump drops the cached analysis
	resp = doRequest(ctx, t, http.MethodGet, "/gymstats/analysis/balance?window=90", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.decode(t, &report)
	assert.False(t, report.HasData)
}

func (s *IntegrationTestSuite) TestLogSessionAndList() {
	t := s.T()
	ctx := context.Background()

	session := training.WorkoutSession{
		// outside every analysis window
		FinishedAt: time.Now().AddDate(0, 0, -gofakeit.Number(400, 800)),
		Exercises: []training.ExerciseWithSets{
			{
				ExerciseID: "pull_up",
				Sets: []training.Set{
					{Weight: 0, Reps: 10, Completed: true},
					{Weight: 0, Reps: 8, Completed: true},
				},
			},
		},
	}

	resp := doRequest(ctx, t, http.MethodPost, "/gymstats/sessions", session, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	var saved training.WorkoutSession
	resp.decode(t, &saved)
	assert.Equal(t, 2, saved.TotalSets)

	resp = doRequest(ctx, t, http.MethodPost, "/gymstats/sessions", training.WorkoutSession{}, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(ctx, t, http.MethodGet, "/gymstats/sessions/list/page/1/size/50", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list workouts.ListSessionsResponse
	resp.decode(t, &list)
	assert.GreaterOrEqual(t, list.Total, 1)

	found := false
	for _, sess := range list.Sessions {
		if sess.ID == saved.ID {
			found = true
		}
	}
	assert.True(t, found)

	resp = doRequest(ctx, t, http.MethodGet, "/gymstats/sessions/list/page/0/size/50", nil, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
