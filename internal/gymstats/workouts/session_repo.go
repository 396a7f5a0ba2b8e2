package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("workout session not found")

// SessionRepo stores finalized workout sessions together with their sets.
type SessionRepo struct {
	db *pgxpool.Pool
}

func NewSessionRepo(db *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{
		db: db,
	}
}

// Add persists the session and all of its sets in one transaction and returns the new id.
func (r *SessionRepo) Add(ctx context.Context, session training.WorkoutSession) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var id int
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO workout_session
				(started_at, finished_at, duration_minutes, total_sets, total_volume)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		nullableTime(session.StartedAt), session.FinishedAt,
		session.DurationMinutes, session.TotalSets, session.TotalVolume,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	span.SetAttributes(attribute.Int("session.id", id))

	var setRows [][]any
	for order, ex := range session.Exercises {
		for _, s := range ex.Sets {
			setRows = append(setRows, []any{
				id, order, ex.ExerciseID, s.SetNumber, s.Weight, s.Reps, s.RestSeconds, s.Completed,
			})
		}
	}
	if len(setRows) > 0 {
		if _, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"workout_set"},
			[]string{"session_id", "exercise_order", "exercise_id", "set_number", "weight", "reps", "rest_seconds", "completed"},
			pgx.CopyFromRows(setRows),
		); err != nil {
			return 0, fmt.Errorf("copy sets: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return id, nil
}

func (r *SessionRepo) Get(ctx context.Context, id int) (_ *training.WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	sessions, err := r.query(
		ctx,
		`SELECT id, started_at, finished_at, duration_minutes, total_sets, total_volume
			FROM workout_session
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}

	return &sessions[0], nil
}

func (r *SessionRepo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	// sets go with the session (on delete cascade)
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_session WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// List returns a page of sessions, the most recent first, and the total count.
func (r *SessionRepo) List(ctx context.Context, page, size int) (_ []training.WorkoutSession, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	if page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout_session;`).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count: %w", err)
	}
	span.SetAttributes(attribute.Int("count_all", total))

	sessions, err := r.query(
		ctx,
		`SELECT id, started_at, finished_at, duration_minutes, total_sets, total_volume
			FROM workout_session
			ORDER BY finished_at DESC, id DESC
			LIMIT $1
			OFFSET $2;`,
		size, (page-1)*size,
	)
	if err != nil {
		return nil, -1, err
	}

	return sessions, total, nil
}

// ListSince returns every session finished at or after since, the oldest first.
func (r *SessionRepo) ListSince(ctx context.Context, since time.Time) (_ []training.WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("since", since.String()))

	sessions, err := r.query(
		ctx,
		`SELECT id, started_at, finished_at, duration_minutes, total_sets, total_volume
			FROM workout_session
			WHERE finished_at >= $1
			ORDER BY finished_at ASC, id ASC;`,
		since,
	)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("sessions", len(sessions)))

	return sessions, nil
}

// query loads the sessions selected by sql, then attaches their sets with a second query.
func (r *SessionRepo) query(ctx context.Context, sql string, args ...any) ([]training.WorkoutSession, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	var sessions []training.WorkoutSession
	for rows.Next() {
		var s training.WorkoutSession
		var startedAt *time.Time
		if err := rows.Scan(&s.ID, &startedAt, &s.FinishedAt, &s.DurationMinutes, &s.TotalSets, &s.TotalVolume); err != nil {
			rows.Close()
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if startedAt != nil {
			s.StartedAt = *startedAt
		}
		sessions = append(sessions, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(sessions) == 0 {
		return sessions, nil
	}
	if err := r.attachSets(ctx, sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SessionRepo) attachSets(ctx context.Context, sessions []training.WorkoutSession) error {
	ids := make([]int, len(sessions))
	index := make(map[int]int, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
		index[s.ID] = i
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT session_id, exercise_order, exercise_id, set_number, weight, reps, rest_seconds, completed
			FROM workout_set
			WHERE session_id = ANY($1)
			ORDER BY session_id, exercise_order, set_number;`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	lastOrder := make(map[int]int, len(sessions))
	for rows.Next() {
		var sessionID, order int
		var set training.Set
		if err := rows.Scan(
			&sessionID, &order, &set.ExerciseID, &set.SetNumber, &set.Weight, &set.Reps, &set.RestSeconds, &set.Completed,
		); err != nil {
			return fmt.Errorf("rows scan: %w", err)
		}

		s := &sessions[index[sessionID]]
		prev, seen := lastOrder[sessionID]
		if !seen || prev != order {
			s.Exercises = append(s.Exercises, training.ExerciseWithSets{ExerciseID: set.ExerciseID})
			lastOrder[sessionID] = order
		}
		block := &s.Exercises[len(s.Exercises)-1]
		block.Sets = append(block.Sets, set)
	}

	return rows.Err()
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
