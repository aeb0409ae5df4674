package stats

import (
	"context"
	"errors"

	"github.com/vkaracic/trackfit/internal/workouts"
	"github.com/vkaracic/trackfit/internal/workouts/catalog"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type logsRepo interface {
	ListAll(ctx context.Context) ([]workouts.WorkoutLog, error)
	ListForDate(ctx context.Context, date string) ([]workouts.WorkoutLog, error)
}

type muscleGroupsRepo interface {
	ListMuscleGroups(ctx context.Context) ([]catalog.MuscleGroup, error)
}

// ErrNoMuscleGroups means the muscle group catalog is empty, which makes
// frequency and record aggregation meaningless.
var ErrNoMuscleGroups = errors.New("no muscle groups available")

// Analyzer recomputes every aggregate from the full log history on each
// call. A single user's history is small, recompute-on-read keeps the
// results correct under deletions with no invalidation bookkeeping.
type Analyzer struct {
	logs         logsRepo
	muscleGroups muscleGroupsRepo
}

func NewAnalyzer(logs logsRepo, muscleGroups muscleGroupsRepo) *Analyzer {
	return &Analyzer{
		logs:         logs,
		muscleGroups: muscleGroups,
	}
}
