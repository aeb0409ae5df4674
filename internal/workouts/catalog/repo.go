package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vkaracic/trackfit/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMuscleGroupNotFound = errors.New("muscle group not found")

const (
	muscleGroupsCacheKey    = "muscle-groups"
	muscleGroupsCacheExpire = 5 * 60 // seconds
)

type ListExercisesParams struct {
	MuscleGroup string
}

// Repo reads and writes the muscle group / exercise catalog. Muscle
// groups change rarely but get read on every stats request, so list
// reads go through a small in-process cache.
type Repo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

func NewRepo(db *pgxpool.Pool) *Repo {
	megabyte := 1024 * 1024
	return &Repo{
		db:    db,
		cache: freecache.NewCache(1 * megabyte),
	}
}

func (r *Repo) ListMuscleGroups(ctx context.Context) (_ []MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listMuscleGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cachedBytes, cacheErr := r.cache.Get([]byte(muscleGroupsCacheKey)); cacheErr == nil {
		var muscleGroups []MuscleGroup
		unmarshalErr := json.Unmarshal(cachedBytes, &muscleGroups)
		if unmarshalErr == nil {
			log.Tracef("found %d muscle groups in cache", len(muscleGroups))
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return muscleGroups, nil
		}
		log.Errorf("failed to unmarshal muscle groups from cache: %s", unmarshalErr)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, created_at FROM muscle_group ORDER BY id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var muscleGroups []MuscleGroup
	for rows.Next() {
		var mg MuscleGroup
		if err := rows.Scan(&mg.ID, &mg.Name, &mg.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		muscleGroups = append(muscleGroups, mg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if muscleGroups == nil {
		muscleGroups = make([]MuscleGroup, 0)
	}

	if muscleGroupsJson, err := json.Marshal(muscleGroups); err == nil {
		if err := r.cache.Set([]byte(muscleGroupsCacheKey), muscleGroupsJson, muscleGroupsCacheExpire); err != nil {
			log.Errorf("failed to write muscle groups cache: %s", err)
		}
	}

	return muscleGroups, nil
}

func (r *Repo) AddMuscleGroup(ctx context.Context, name string) (_ *MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.addMuscleGroup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	var mg MuscleGroup
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO muscle_group (name, created_at) VALUES ($1, NOW())
			RETURNING id, name, created_at;`,
		name,
	).Scan(&mg.ID, &mg.Name, &mg.CreatedAt); err != nil {
		return nil, err
	}

	r.cache.Del([]byte(muscleGroupsCacheKey))

	return &mg, nil
}

func (r *Repo) ListExercises(ctx context.Context, params ListExercisesParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.MuscleGroup != "" {
		span.SetAttributes(attribute.String("muscle_group", params.MuscleGroup))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, created_at
			FROM exercise
			WHERE ($1::text = '' OR muscle_group = $1)
			ORDER BY id;`,
		params.MuscleGroup,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if exercises == nil {
		exercises = make([]Exercise, 0)
	}
	return exercises, nil
}

func (r *Repo) AddExercise(ctx context.Context, name, muscleGroup string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))
	span.SetAttributes(attribute.String("muscle_group", muscleGroup))

	var e Exercise
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO exercise (name, muscle_group, created_at) VALUES ($1, $2, NOW())
			RETURNING id, name, muscle_group, created_at;`,
		name, muscleGroup,
	).Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.CreatedAt); err != nil {
		return nil, err
	}

	return &e, nil
}
