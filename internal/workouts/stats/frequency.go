package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/vkaracic/trackfit/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"

	dayLayout = "2006-01-02"
)

func ParsePeriod(period string) (Period, error) {
	switch Period(period) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(period), nil
	default:
		return "", fmt.Errorf("unknown period: %s", period)
	}
}

// Cap is the maximum count one muscle group can reach within the window:
// a group can be worked at most once per distinct window unit.
func (p Period) Cap() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	default:
		return 12
	}
}

// WindowDates returns the window unit dates for a period anchored at the
// reference date (inclusive), oldest first. Week and month windows are
// trailing calendar days; the year window is the trailing 12 months,
// each represented by its first day.
func (p Period) WindowDates(ref time.Time) []string {
	switch p {
	case PeriodWeek, PeriodMonth:
		days := p.Cap()
		dates := make([]string, 0, days)
		for i := days - 1; i >= 0; i-- {
			dates = append(dates, ref.AddDate(0, 0, -i).Format(dayLayout))
		}
		return dates
	default:
		dates := make([]string, 0, 12)
		for i := 11; i >= 0; i-- {
			firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
			dates = append(dates, firstOfMonth.AddDate(0, -i, 0).Format(dayLayout))
		}
		return dates
	}
}

// FrequencyEntry is one radar chart axis: a muscle group and the number
// of distinct window units on which it was worked.
type FrequencyEntry struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// MuscleFrequency counts, per configured muscle group, the distinct
// (date, muscle group) occurrences within the period window. Multiple
// logs of the same group on the same date count once, and the count is
// clipped at the window's unit count. Every configured group shows up in
// the result, zero counts included.
func (a *Analyzer) MuscleFrequency(ctx context.Context, period Period, ref time.Time) (_ []FrequencyEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.muscleFrequency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("period", string(period)))

	muscleGroups, err := a.muscleGroups.ListMuscleGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}
	if len(muscleGroups) == 0 {
		return nil, ErrNoMuscleGroups
	}

	counts := make(map[string]int, len(muscleGroups))
	for _, mg := range muscleGroups {
		counts[mg.Name] = 0
	}

	seen := make(map[string]bool)
	for _, date := range period.WindowDates(ref) {
		logs, err := a.logs.ListForDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("list workout logs for %s: %w", date, err)
		}

		for _, workoutLog := range logs {
			if _, known := counts[workoutLog.MuscleGroup]; !known {
				continue
			}

			dedupKey := workoutLog.Date + "-" + workoutLog.MuscleGroup
			if seen[dedupKey] {
				continue
			}
			seen[dedupKey] = true

			if counts[workoutLog.MuscleGroup] < period.Cap() {
				counts[workoutLog.MuscleGroup]++
			}
		}
	}

	// keep the catalog order, charts want stable axes
	series := make([]FrequencyEntry, 0, len(muscleGroups))
	for _, mg := range muscleGroups {
		series = append(series, FrequencyEntry{
			Label: mg.Name,
			Value: counts[mg.Name],
		})
	}
	return series, nil
}
