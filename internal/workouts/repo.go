package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vkaracic/trackfit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutLogNotFound = errors.New("workout log not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workoutLog WorkoutLog) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := json.Marshal(workoutLog.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_log
				(date, muscle_group, exercises, created_at)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		workoutLog.Date, workoutLog.MuscleGroup, exercisesJson, workoutLog.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workoutlog.id", id))

	workoutLog.ID = id
	return &workoutLog, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, muscle_group, exercises, created_at
			FROM workout_log
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	logs, err := r.rows2logs(rows)
	if err != nil {
		return nil, err
	}

	if len(logs) != 1 {
		return nil, ErrWorkoutLogNotFound
	}

	return &logs[0], nil
}

// ListAll returns the complete workout log history, most recent first.
func (r *Repo) ListAll(ctx context.Context) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, muscle_group, exercises, created_at
			FROM workout_log
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	logs, err := r.rows2logs(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2logs: %w", err)
	}
	return logs, nil
}

// ListForDate returns the logs stored for one calendar date (YYYY-MM-DD).
func (r *Repo) ListForDate(ctx context.Context, date string) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listfordate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, muscle_group, exercises, created_at
			FROM workout_log
			WHERE date = $1
			ORDER BY created_at DESC;`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	logs, err := r.rows2logs(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2logs: %w", err)
	}
	return logs, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_log WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutLogNotFound
	}
	return nil
}

func (r *Repo) rows2logs(rows pgx.Rows) ([]WorkoutLog, error) {
	var logs []WorkoutLog
	for rows.Next() {
		var id int
		var date string
		var muscleGroup string
		var exercisesBytes []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &date, &muscleGroup, &exercisesBytes, &createdAt); err != nil {
			return nil, err
		}

		workoutLog := WorkoutLog{
			ID:          id,
			Date:        date,
			MuscleGroup: muscleGroup,
			CreatedAt:   createdAt,
		}

		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &workoutLog.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for workout log %d: %w", id, err)
			}
		}
		if workoutLog.Exercises == nil {
			workoutLog.Exercises = make([]ExerciseEntry, 0)
		}

		logs = append(logs, workoutLog)
	}

	if logs == nil {
		logs = make([]WorkoutLog, 0)
	}

	return logs, nil
}
