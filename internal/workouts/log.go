package workouts

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// WorkoutLog is one submitted workout entry for a given date and muscle group.
type WorkoutLog struct {
	ID          int             `json:"id"`
	Date        string          `json:"date"`
	MuscleGroup string          `json:"muscleGroup"`
	Exercises   []ExerciseEntry `json:"exercises"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ExerciseEntry comes in two schema generations which coexist in storage:
//   - set-list variant: Sets is non-empty, one element per performed set
//   - flat variant (legacy): Sets is empty, Reps/Weight describe a single set
//
// All aggregation goes through Totals/Averages instead of probing the
// fields directly.
type ExerciseEntry struct {
	ExerciseName string     `json:"exercise_name"`
	Sets         []SetEntry `json:"sets,omitempty"`
	Reps         int        `json:"reps,omitempty"`
	Weight       string     `json:"weight,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

type SetEntry struct {
	SetNumber int    `json:"set_number"`
	Reps      int    `json:"reps"`
	Weight    string `json:"weight"`
}

type EntryTotals struct {
	TotalWeight float64
	TotalReps   int
	SetCount    int
}

type EntryAverages struct {
	AvgWeight float64
	AvgReps   float64
}

// ParseWeight parses a stored weight string. Historical user-entered data
// can be empty or garbage, in which case the weight counts as zero.
func ParseWeight(weight string) float64 {
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

// Matches reports whether the entry is for the given exercise name,
// compared case-insensitively.
func (e ExerciseEntry) Matches(exerciseName string) bool {
	return strings.EqualFold(e.ExerciseName, exerciseName)
}

// WeightRepsPairs flattens the entry into per-set (weight, reps) pairs,
// regardless of the schema variant.
func (e ExerciseEntry) WeightRepsPairs() []WeightReps {
	if len(e.Sets) > 0 {
		pairs := make([]WeightReps, 0, len(e.Sets))
		for _, set := range e.Sets {
			pairs = append(pairs, WeightReps{
				Weight: ParseWeight(set.Weight),
				Reps:   set.Reps,
			})
		}
		return pairs
	}
	return []WeightReps{{
		Weight: ParseWeight(e.Weight),
		Reps:   e.Reps,
	}}
}

type WeightReps struct {
	Weight float64
	Reps   int
}

func (e ExerciseEntry) Totals() EntryTotals {
	totals := EntryTotals{}
	for _, pair := range e.WeightRepsPairs() {
		totals.TotalWeight += pair.Weight
		totals.TotalReps += pair.Reps
		totals.SetCount++
	}
	return totals
}

// Averages returns the per-set average weight and reps,
// rounded to one decimal place.
func (e ExerciseEntry) Averages() EntryAverages {
	totals := e.Totals()
	return EntryAverages{
		AvgWeight: RoundToOneDecimal(totals.TotalWeight / float64(totals.SetCount)),
		AvgReps:   RoundToOneDecimal(float64(totals.TotalReps) / float64(totals.SetCount)),
	}
}

func RoundToOneDecimal(val float64) float64 {
	return math.Round(val*10) / 10
}

const dayLayout = "2006-01-02"

var dateLayouts = []string{
	dayLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a stored log date. Dates are semantically a calendar
// day, but older clients stored full timestamps too.
func ParseDate(date string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayKey truncates a stored log date to its calendar day. Unparseable
// dates fall back to the raw string, so broken records still group
// together instead of being dropped.
func DayKey(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		return strings.TrimSpace(date)
	}
	return t.Format(dayLayout)
}
