package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vkaracic/trackfit/internal/telemetry/metrics"
	"github.com/vkaracic/trackfit/internal/telemetry/tracing"
	"github.com/vkaracic/trackfit/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type workoutLogsRepo interface {
	Add(ctx context.Context, workoutLog WorkoutLog) (*WorkoutLog, error)
	Get(ctx context.Context, id int) (*WorkoutLog, error)
	ListAll(ctx context.Context) ([]WorkoutLog, error)
	ListForDate(ctx context.Context, date string) ([]WorkoutLog, error)
	Delete(ctx context.Context, id int) error
}

type DeleteGroupResponse struct {
	Date        string `json:"date"`
	MuscleGroup string `json:"muscleGroup"`
	DeletedIDs  []int  `json:"deletedIds"`
}

type ListResponse struct {
	WorkoutLogs []WorkoutLog `json:"workoutLogs"`
	Total       int          `json:"total"`
}

type Handler struct {
	repo           workoutLogsRepo
	grouper        *Grouper
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutLogsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		grouper:        NewGrouper(repo),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workoutLog WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&workoutLog); err != nil {
		log.Tracef("new workout log, unmarshal json params: %s", err)
		http.Error(w, "add workout log failed", http.StatusBadRequest)
		return
	}

	if workoutLog.MuscleGroup == "" || len(workoutLog.Exercises) == 0 {
		http.Error(w, "error, muscle group or exercises empty", http.StatusBadRequest)
		return
	}

	if workoutLog.Date == "" {
		workoutLog.Date = time.Now().Format(dayLayout)
	}
	if workoutLog.CreatedAt.IsZero() {
		workoutLog.CreatedAt = time.Now()
	}

	addedLog, err := handler.repo.Add(ctx, workoutLog)
	if err != nil {
		log.Errorf("failed to add new workout log [%s] [%s]: %s", workoutLog.Date, workoutLog.MuscleGroup, err)
		http.Error(w, "error, failed to add new workout log", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutLogs.Inc()

	addedLogJson, err := json.Marshal(addedLog)
	if err != nil {
		log.Errorf("failed to marshal new workout log: %s", err)
		http.Error(w, "error, failed to add new workout log", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout log added: %s", addedLogJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedLogJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	logs, err := handler.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("list workout logs error: %s", err)
		http.Error(w, "failed to get workout logs", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		WorkoutLogs: logs,
		Total:       len(logs),
	})
	if err != nil {
		log.Errorf("marshal workout logs error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	var grouped []GroupedWorkout
	var err error
	if date := r.URL.Query().Get("date"); date != "" {
		grouped, err = handler.grouper.HistoryForDate(ctx, date)
	} else {
		grouped, err = handler.grouper.History(ctx)
	}
	if err != nil {
		log.Errorf("failed to get workout history: %s", err)
		http.Error(w, "failed to get workout history", http.StatusInternalServerError)
		return
	}

	groupedJson, err := json.Marshal(grouped)
	if err != nil {
		log.Errorf("failed to marshal workout history: %s", err)
		http.Error(w, "failed to marshal workout history", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, groupedJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteGroup")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if date == "" {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}
	muscleGroup := vars["mgroup"]
	if muscleGroup == "" {
		http.Error(w, "error, muscle group empty", http.StatusBadRequest)
		return
	}

	deletedIDs, err := handler.grouper.DeleteGroup(ctx, date, muscleGroup)
	if errors.Is(err, ErrWorkoutLogNotFound) {
		log.Debugf("workout group [%s] [%s] not found", date, muscleGroup)
		http.Error(w, "workout group not found", http.StatusNotFound)
		return
	}

	handler.metricsManager.CounterWorkoutLogsDeleted.Add(float64(len(deletedIDs)))

	if err != nil {
		log.Errorf("failed to delete workout group [%s] [%s]: %s", date, muscleGroup, err)
		http.Error(w, "workout group not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteGroupResponse{
		Date:        date,
		MuscleGroup: muscleGroup,
		DeletedIDs:  deletedIDs,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
