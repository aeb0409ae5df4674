package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/vkaracic/trackfit/internal/telemetry/tracing"
	"github.com/vkaracic/trackfit/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=catalog_test

type catalogRepo interface {
	ListMuscleGroups(ctx context.Context) ([]MuscleGroup, error)
	AddMuscleGroup(ctx context.Context, name string) (*MuscleGroup, error)
	ListExercises(ctx context.Context, params ListExercisesParams) ([]Exercise, error)
	AddExercise(ctx context.Context, name, muscleGroup string) (*Exercise, error)
}

type AddMuscleGroupRequest struct {
	Name string `json:"name"`
}

type AddExerciseRequest struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
}

type Handler struct {
	repo   catalogRepo
	filter *Filter
}

func NewHandler(repo catalogRepo, filter *Filter) *Handler {
	return &Handler{
		repo:   repo,
		filter: filter,
	}
}

func (handler *Handler) HandleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.listMuscleGroups")
	defer span.End()

	muscleGroups, err := handler.repo.ListMuscleGroups(ctx)
	if err != nil {
		log.Errorf("list muscle groups error: %s", err)
		http.Error(w, "failed to get muscle groups", http.StatusInternalServerError)
		return
	}

	muscleGroupsJson, err := json.Marshal(muscleGroups)
	if err != nil {
		log.Errorf("marshal muscle groups error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, muscleGroupsJson, http.StatusOK)
}

func (handler *Handler) HandleAddMuscleGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.addMuscleGroup")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var addReq AddMuscleGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Tracef("new muscle group, unmarshal json params: %s", err)
		http.Error(w, "add muscle group failed", http.StatusBadRequest)
		return
	}

	if addReq.Name == "" {
		http.Error(w, "error, muscle group name empty", http.StatusBadRequest)
		return
	}

	muscleGroup, err := handler.repo.AddMuscleGroup(ctx, addReq.Name)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "muscle group already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add muscle group [%s]: %s", addReq.Name, err)
		http.Error(w, "error, failed to add muscle group", http.StatusInternalServerError)
		return
	}

	muscleGroupJson, err := json.Marshal(muscleGroup)
	if err != nil {
		log.Errorf("failed to marshal muscle group: %s", err)
		http.Error(w, "error, failed to add muscle group", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, muscleGroupJson, http.StatusCreated)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.listExercises")
	defer span.End()

	exercises, err := handler.repo.ListExercises(ctx, ListExercisesParams{
		MuscleGroup: r.URL.Query().Get("group"),
	})
	if err != nil {
		log.Errorf("list exercises error: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	// an explicit ?q= takes over the shared search query
	if query, present := r.URL.Query()["q"]; present {
		handler.filter.SetQuery(query[0])
	}
	exercises = handler.filter.Apply(exercises)

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.addExercise")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var addReq AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if addReq.Name == "" || addReq.MuscleGroup == "" {
		http.Error(w, "error, exercise name or muscle group empty", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.AddExercise(ctx, addReq.Name, addReq.MuscleGroup)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "exercise already exists", http.StatusConflict)
			return
		}
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "unknown muscle group", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add exercise [%s] [%s]: %s", addReq.Name, addReq.MuscleGroup, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusCreated)
}
