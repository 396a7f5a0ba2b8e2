package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitforge/internal/gymstats/training"
	"github.com/2beens/fitforge/internal/telemetry/tracing"
	"github.com/2beens/fitforge/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDefinitionNotFound  = errors.New("exercise definition not found")
	ErrDuplicateDefinition = errors.New("exercise definition already exists")
)

// CatalogRepo stores exercise definitions. Definitions are immutable: there is no update.
type CatalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepo(db *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{
		db: db,
	}
}

func (r *CatalogRepo) Add(ctx context.Context, def training.ExerciseDefinition) (_ *training.ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("definition.id", def.ID))

	engagementJson, err := json.Marshal(def.MuscleEngagement)
	if err != nil {
		return nil, fmt.Errorf("marshal muscle engagement: %w", err)
	}
	if def.CreatedAt.IsZero() {
		def.CreatedAt = time.Now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise_definition
				(id, name, category, equipment, difficulty, muscle_engagement, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		def.ID, def.Name, def.Category, def.Equipment, def.Difficulty, engagementJson, def.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateDefinition
		}
		return nil, err
	}

	return &def, nil
}

// Upsert inserts the definitions, replacing the ones with the same id. Used by the seed loader.
func (r *CatalogRepo) Upsert(ctx context.Context, defs []training.ExerciseDefinition) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("definitions", len(defs)))

	batch := &pgx.Batch{}
	for _, def := range defs {
		engagementJson, err := json.Marshal(def.MuscleEngagement)
		if err != nil {
			return 0, fmt.Errorf("marshal muscle engagement [%s]: %w", def.ID, err)
		}
		batch.Queue(
			`INSERT INTO exercise_definition
					(id, name, category, equipment, difficulty, muscle_engagement)
					VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (id) DO UPDATE SET
					name = EXCLUDED.name,
					category = EXCLUDED.category,
					equipment = EXCLUDED.equipment,
					difficulty = EXCLUDED.difficulty,
					muscle_engagement = EXCLUDED.muscle_engagement;`,
			def.ID, def.Name, def.Category, def.Equipment, def.Difficulty, engagementJson,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	upserted := 0
	for range defs {
		tag, err := results.Exec()
		if err != nil {
			return upserted, fmt.Errorf("upsert definition: %w", err)
		}
		upserted += int(tag.RowsAffected())
	}

	return upserted, nil
}

func (r *CatalogRepo) Get(ctx context.Context, id string) (_ *training.ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("definition.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, category, equipment, difficulty, muscle_engagement, created_at
			FROM exercise_definition
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	defs, err := rows2definitions(rows)
	if err != nil {
		return nil, err
	}
	if len(defs) != 1 {
		return nil, ErrDefinitionNotFound
	}

	return &defs[0], nil
}

func (r *CatalogRepo) List(ctx context.Context) (_ []training.ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, category, equipment, difficulty, muscle_engagement, created_at
			FROM exercise_definition
			ORDER BY id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	defs, err := rows2definitions(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2definitions: %w", err)
	}
	span.SetAttributes(attribute.Int("definitions", len(defs)))

	return defs, nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("definition.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_definition WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDefinitionNotFound
	}
	return nil
}

func rows2definitions(rows pgx.Rows) ([]training.ExerciseDefinition, error) {
	var defs []training.ExerciseDefinition
	for rows.Next() {
		var def training.ExerciseDefinition
		var engagementJson []byte
		if err := rows.Scan(
			&def.ID, &def.Name, &def.Category, &def.Equipment, &def.Difficulty, &engagementJson, &def.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if len(engagementJson) > 0 {
			if err := json.Unmarshal(engagementJson, &def.MuscleEngagement); err != nil {
				return nil, fmt.Errorf("unmarshal muscle engagement [%s]: %w", def.ID, err)
			}
		}
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return defs, nil
}
