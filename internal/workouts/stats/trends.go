package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/vkaracic/trackfit/internal/telemetry/tracing"
	"github.com/vkaracic/trackfit/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

type TrendPoint struct {
	Date      string  `json:"date"`
	AvgWeight float64 `json:"avgWeight"`
	AvgReps   float64 `json:"avgReps"`
}

// ExerciseTrend is the progress series for one exercise name. NoData is
// set explicitly so clients render a "no data" state instead of an empty
// chart with misleading axes.
type ExerciseTrend struct {
	Exercise string       `json:"exercise"`
	Points   []TrendPoint `json:"points"`
	NoData   bool         `json:"noData"`
}

// Trend walks the complete log history and emits one point per log
// containing the exercise (matched case-insensitively), sorted ascending
// by date. Each point carries the per-set average weight and reps of
// that log's entry, rounded to one decimal.
func (a *Analyzer) Trend(ctx context.Context, exerciseName string) (_ *ExerciseTrend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.trend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))

	logs, err := a.logs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}

	points := make([]TrendPoint, 0)
	for _, workoutLog := range logs {
		entry, found := matchingEntry(workoutLog, exerciseName)
		if !found {
			continue
		}

		averages := entry.Averages()
		points = append(points, TrendPoint{
			Date:      workoutLog.Date,
			AvgWeight: averages.AvgWeight,
			AvgReps:   averages.AvgReps,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		ti, _ := workouts.ParseDate(points[i].Date)
		tj, _ := workouts.ParseDate(points[j].Date)
		return ti.Before(tj)
	})

	span.SetAttributes(attribute.Int("points", len(points)))
	return &ExerciseTrend{
		Exercise: exerciseName,
		Points:   points,
		NoData:   len(points) == 0,
	}, nil
}

func matchingEntry(workoutLog workouts.WorkoutLog, exerciseName string) (workouts.ExerciseEntry, bool) {
	for _, entry := range workoutLog.Exercises {
		if entry.Matches(exerciseName) {
			return entry, true
		}
	}
	return workouts.ExerciseEntry{}, false
}
