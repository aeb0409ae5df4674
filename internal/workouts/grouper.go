package workouts

import (
	"context"
	"fmt"
	"sort"

	"github.com/vkaracic/trackfit/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

// GroupedWorkout is the history view for one calendar day: for every
// muscle group worked that day, the concatenation of all logged
// exercises plus the source log ids needed for a bulk delete.
type GroupedWorkout struct {
	Date   string                        `json:"date"`
	Groups map[string]*MuscleGroupBucket `json:"groups"`
}

type MuscleGroupBucket struct {
	Exercises []ExerciseEntry `json:"exercises"`
	IDs       []int           `json:"ids"`
}

type Grouper struct {
	repo workoutLogsRepo
}

func NewGrouper(repo workoutLogsRepo) *Grouper {
	return &Grouper{
		repo: repo,
	}
}

// History groups the complete log history by calendar day and muscle
// group, most recent day first. Grouping the same history twice yields
// identical ordering and contents.
func (g *Grouper) History(ctx context.Context) (_ []GroupedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "grouper.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := g.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}

	return GroupLogs(logs), nil
}

// HistoryForDate is like History, narrowed to the bucket(s) of a single
// calendar date.
func (g *Grouper) HistoryForDate(ctx context.Context, date string) (_ []GroupedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "grouper.workouts.historyForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	grouped, err := g.History(ctx)
	if err != nil {
		return nil, err
	}

	dayKey := DayKey(date)
	filtered := make([]GroupedWorkout, 0, 1)
	for _, groupedWorkout := range grouped {
		if DayKey(groupedWorkout.Date) == dayKey {
			filtered = append(filtered, groupedWorkout)
		}
	}
	return filtered, nil
}

// DeleteGroup deletes every log behind the (date, muscleGroup) history
// bucket. A failed delete of one log does not stop the others; all
// failures come back as one combined error, with the ids that did get
// deleted. There is no rollback, callers re-fetch to see the real state.
func (g *Grouper) DeleteGroup(ctx context.Context, date, muscleGroup string) (deletedIDs []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "grouper.workouts.deleteGroup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))
	span.SetAttributes(attribute.String("muscle_group", muscleGroup))

	grouped, err := g.HistoryForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	var bucket *MuscleGroupBucket
	for _, groupedWorkout := range grouped {
		if b, ok := groupedWorkout.Groups[muscleGroup]; ok {
			bucket = b
			break
		}
	}
	if bucket == nil {
		return nil, ErrWorkoutLogNotFound
	}

	var deleteErrs error
	for _, id := range bucket.IDs {
		if err := g.repo.Delete(ctx, id); err != nil {
			deleteErrs = multierr.Append(deleteErrs, fmt.Errorf("delete workout log %d: %w", id, err))
			continue
		}
		deletedIDs = append(deletedIDs, id)
	}

	span.SetAttributes(attribute.Int("deleted", len(deletedIDs)))
	return deletedIDs, deleteErrs
}

// GroupLogs is the pure grouping pass behind History, exposed for
// callers that already hold the logs.
func GroupLogs(logs []WorkoutLog) []GroupedWorkout {
	day2group := make(map[string]*GroupedWorkout)
	var ordered []*GroupedWorkout

	for _, workoutLog := range logs {
		dayKey := DayKey(workoutLog.Date)

		groupedWorkout, ok := day2group[dayKey]
		if !ok {
			groupedWorkout = &GroupedWorkout{
				Date:   workoutLog.Date,
				Groups: make(map[string]*MuscleGroupBucket),
			}
			day2group[dayKey] = groupedWorkout
			ordered = append(ordered, groupedWorkout)
		}

		bucket, ok := groupedWorkout.Groups[workoutLog.MuscleGroup]
		if !ok {
			bucket = &MuscleGroupBucket{
				Exercises: make([]ExerciseEntry, 0, len(workoutLog.Exercises)),
				IDs:       make([]int, 0, 1),
			}
			groupedWorkout.Groups[workoutLog.MuscleGroup] = bucket
		}

		bucket.Exercises = append(bucket.Exercises, workoutLog.Exercises...)
		bucket.IDs = append(bucket.IDs, workoutLog.ID)
	}

	// most recent day first, ties keep insertion order
	sort.SliceStable(ordered, func(i, j int) bool {
		ti, _ := ParseDate(ordered[i].Date)
		tj, _ := ParseDate(ordered[j].Date)
		return ti.After(tj)
	})

	grouped := make([]GroupedWorkout, 0, len(ordered))
	for _, groupedWorkout := range ordered {
		grouped = append(grouped, *groupedWorkout)
	}
	return grouped
}
