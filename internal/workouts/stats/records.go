package stats

import (
	"context"
	"fmt"

	"github.com/vkaracic/trackfit/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// PersonalRecord is the best weight ever logged for an exercise, with
// the reps recorded alongside that weight. When no positive weight was
// ever logged, Weight stays unset and Reps holds the best rep count.
type PersonalRecord struct {
	Weight *float64 `json:"weight,omitempty"`
	Reps   int      `json:"reps"`
}

// PersonalRecords scans the complete log history and derives the record
// per exercise name. Equal weights never replace a stored record, so the
// reps from the first time a max was hit stick.
func (a *Analyzer) PersonalRecords(ctx context.Context) (_ map[string]PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.personalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	muscleGroups, err := a.muscleGroups.ListMuscleGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}
	if len(muscleGroups) == 0 {
		return nil, ErrNoMuscleGroups
	}

	logs, err := a.logs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}

	records := make(map[string]PersonalRecord)
	for _, workoutLog := range logs {
		for _, entry := range workoutLog.Exercises {
			exerciseName := entry.ExerciseName
			for _, pair := range entry.WeightRepsPairs() {
				record, exists := records[exerciseName]

				if pair.Weight > 0 {
					if !exists || record.Weight == nil || *record.Weight < pair.Weight {
						weight := pair.Weight
						records[exerciseName] = PersonalRecord{
							Weight: &weight,
							Reps:   pair.Reps,
						}
					}
					continue
				}

				// no usable weight, track the best reps until a real
				// weight shows up for this exercise
				if !exists || (record.Weight == nil && record.Reps < pair.Reps) {
					records[exerciseName] = PersonalRecord{
						Reps: pair.Reps,
					}
				}
			}
		}
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}
