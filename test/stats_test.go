//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/vkaracic/trackfit/internal/workouts"
	"github.com/vkaracic/trackfit/internal/workouts/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestStats() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.deleteAllWorkoutLogs(ctx)
	token := doLogin(ctx, t)
	s.ensureMuscleGroup(ctx, token, "Chest")
	s.ensureMuscleGroup(ctx, token, "Back")

	s.newWorkoutLogRequest(ctx, workouts.WorkoutLog{
		Date:        "2024-03-04",
		MuscleGroup: "Chest",
		Exercises: []workouts.ExerciseEntry{
			{ExerciseName: "Bench Press", Reps: 10, Weight: "60"},
		},
	})
	s.newWorkoutLogRequest(ctx, workouts.WorkoutLog{
		Date:        "2024-03-06",
		MuscleGroup: "Chest",
		Exercises: []workouts.ExerciseEntry{
			{
				ExerciseName: "Bench Press",
				Sets: []workouts.SetEntry{
					{SetNumber: 1, Reps: 8, Weight: "70"},
					{SetNumber: 2, Reps: 5, Weight: "80"},
				},
			},
		},
	})
	s.newWorkoutLogRequest(ctx, workouts.WorkoutLog{
		Date:        "2024-03-06",
		MuscleGroup: "Back",
		Exercises: []workouts.ExerciseEntry{
			{ExerciseName: "Pull Up", Reps: 12, Weight: "bodyweight"},
		},
	})

	t.Run("personal records", func(t *testing.T) {
		respBytes := s.getWithToken(ctx, t, token, "/stats/records")

		var records map[string]stats.PersonalRecord
		require.NoError(t, json.Unmarshal(respBytes, &records))

		benchRecord, ok := records["Bench Press"]
		require.True(t, ok)
		require.NotNil(t, benchRecord.Weight)
		assert.Equal(t, 80.0, *benchRecord.Weight)
		assert.Equal(t, 5, benchRecord.Reps)

		// weight never parses to a positive number, reps only
		pullUpRecord, ok := records["Pull Up"]
		require.True(t, ok)
		assert.Nil(t, pullUpRecord.Weight)
		assert.Equal(t, 12, pullUpRecord.Reps)
	})

	t.Run("muscle frequency", func(t *testing.T) {
		respBytes := s.getWithToken(ctx, t, token, "/stats/frequency/week?ref=2024-03-10")

		var series []stats.FrequencyEntry
		require.NoError(t, json.Unmarshal(respBytes, &series))
		require.NotEmpty(t, series)

		counts := map[string]int{}
		for _, entry := range series {
			counts[entry.Label] = entry.Value
		}
		assert.Equal(t, 2, counts["Chest"])
		assert.Equal(t, 1, counts["Back"])
	})

	t.Run("exercise trend", func(t *testing.T) {
		respBytes := s.getWithToken(ctx, t, token, "/stats/trend/Bench%20Press")

		var trend stats.ExerciseTrend
		require.NoError(t, json.Unmarshal(respBytes, &trend))
		assert.False(t, trend.NoData)
		require.Len(t, trend.Points, 2)

		// ascending by date
		assert.Equal(t, "2024-03-04", trend.Points[0].Date)
		assert.Equal(t, 60.0, trend.Points[0].AvgWeight)
		assert.Equal(t, "2024-03-06", trend.Points[1].Date)
		assert.Equal(t, 75.0, trend.Points[1].AvgWeight)
		assert.Equal(t, 6.5, trend.Points[1].AvgReps)
	})

	t.Run("exercise trend, no data", func(t *testing.T) {
		respBytes := s.getWithToken(ctx, t, token, "/stats/trend/Deadlift")

		var trend stats.ExerciseTrend
		require.NoError(t, json.Unmarshal(respBytes, &trend))
		assert.True(t, trend.NoData)
		assert.Empty(t, trend.Points)
	})
}
