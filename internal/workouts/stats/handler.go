package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vkaracic/trackfit/internal/telemetry/tracing"
	"github.com/vkaracic/trackfit/internal/workouts"
	"github.com/vkaracic/trackfit/pkg"
)

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.records")
	defer span.End()

	records, err := handler.analyzer.PersonalRecords(ctx)
	if errors.Is(err, ErrNoMuscleGroups) {
		http.Error(w, ErrNoMuscleGroups.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to get personal records: %s", err)
		http.Error(w, "failed to get personal records", http.StatusInternalServerError)
		return
	}

	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("failed to marshal personal records: %s", err)
		http.Error(w, "failed to marshal personal records", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordsJson, http.StatusOK)
}

func (handler *Handler) HandleFrequency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.frequency")
	defer span.End()

	vars := mux.Vars(r)
	period, err := ParsePeriod(vars["period"])
	if err != nil {
		http.Error(w, "error, invalid period", http.StatusBadRequest)
		return
	}

	ref := time.Now()
	if refParam := r.URL.Query().Get("ref"); refParam != "" {
		parsedRef, ok := workouts.ParseDate(refParam)
		if !ok {
			http.Error(w, "error, invalid ref date", http.StatusBadRequest)
			return
		}
		ref = parsedRef
	}

	series, err := handler.analyzer.MuscleFrequency(ctx, period, ref)
	if errors.Is(err, ErrNoMuscleGroups) {
		http.Error(w, ErrNoMuscleGroups.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to get muscle frequency [%s]: %s", period, err)
		http.Error(w, "failed to get muscle frequency", http.StatusInternalServerError)
		return
	}

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("failed to marshal muscle frequency: %s", err)
		http.Error(w, "failed to marshal muscle frequency", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, seriesJson, http.StatusOK)
}

func (handler *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.trend")
	defer span.End()

	vars := mux.Vars(r)
	exerciseName := vars["exercise"]
	if exerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	trend, err := handler.analyzer.Trend(ctx, exerciseName)
	if err != nil {
		log.Errorf("failed to get trend for [%s]: %s", exerciseName, err)
		http.Error(w, "failed to get exercise trend", http.StatusInternalServerError)
		return
	}

	trendJson, err := json.Marshal(trend)
	if err != nil {
		log.Errorf("failed to marshal exercise trend: %s", err)
		http.Error(w, "failed to marshal exercise trend", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trendJson, http.StatusOK)
}
