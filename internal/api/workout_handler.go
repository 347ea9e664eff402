package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fitlog/gym-tracker/internal/domain"
	"fitlog/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type CreateWorkoutRequest struct {
	Date     int64   `json:"date" binding:"required"` // Epoch millis
	Notes    string  `json:"notes"`
	Duration *int    `json:"duration" binding:"omitempty,min=1"` // Minutes
	PresetID *string `json:"presetId"`
}

type UpdateWorkoutRequest struct {
	Date     *int64  `json:"date"`
	Notes    *string `json:"notes"`
	Duration *int    `json:"duration" binding:"omitempty,min=1"`
}

type StartFromPresetRequest struct {
	PresetID string `json:"presetId" binding:"required"`
	Date     int64  `json:"date" binding:"required"`
	Notes    string `json:"notes"`
}

type SetInputRequest struct {
	ExerciseID string  `json:"exerciseId" binding:"required"`
	SetNumber  int     `json:"setNumber" binding:"required,min=1"`
	Reps       int     `json:"reps" binding:"required,min=1"`
	Weight     float64 `json:"weight"`
	RestTime   *int    `json:"restTime" binding:"omitempty,min=0"`
}

type SyncSetsRequest struct {
	Sets []SetInputRequest `json:"sets" binding:"required"`
}

type WorkoutResponse struct {
	ID        string    `json:"id"`
	Date      int64     `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	Duration  *int      `json:"duration,omitempty"`
	PresetID  string    `json:"presetId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type WorkoutDetailResponse struct {
	WorkoutResponse
	Sets      []SetResponse      `json:"sets"`
	Exercises []ExerciseResponse `json:"exercises"`
}

// MapWorkoutToResponse converts a domain.Workout to WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	resp := WorkoutResponse{
		ID:        w.ID.Hex(),
		Date:      w.Date,
		Notes:     w.Notes,
		Duration:  w.Duration,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if w.PresetID != nil {
		resp.PresetID = w.PresetID.Hex()
	}
	return resp
}

// MapWorkoutsToResponse converts a slice of domain.Workout to response DTOs.
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = MapWorkoutToResponse(&w)
	}
	return responses
}

// optionalEpochMillisQuery parses an optional epoch-millis query parameter.
func optionalEpochMillisQuery(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+": must be epoch milliseconds.")
		return nil, false
	}
	return &value, true
}

// --- Handler Methods ---

// ListWorkouts returns the caller's workouts newest first, optionally bounded
// by ?startDate= and ?endDate= (inclusive, epoch millis).
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	startDate, ok := optionalEpochMillisQuery(c, "startDate")
	if !ok {
		return
	}
	endDate, ok := optionalEpochMillisQuery(c, "endDate")
	if !ok {
		return
	}

	workouts, err := h.workoutService.List(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}

	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// GetWorkout returns one workout joined with its sets and exercises.
// Absent and not-owned are both 404 on purpose.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := h.workoutService.Get(c.Request.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout.")
		}
		return
	}

	c.JSON(http.StatusOK, WorkoutDetailResponse{
		WorkoutResponse: MapWorkoutToResponse(&detail.Workout),
		Sets:            MapSetsToResponse(detail.Sets),
		Exercises:       MapExercisesToResponse(detail.Exercises),
	})
}

// CreateWorkout inserts a new workout. Preset expansion is a separate call
// (StartFromPreset); this one never creates sets.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var presetID *primitive.ObjectID
	if req.PresetID != nil && *req.PresetID != "" {
		id, err := primitive.ObjectIDFromHex(*req.PresetID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid presetId format.")
			return
		}
		presetID = &id
	}

	workout, err := h.workoutService.Create(c.Request.Context(), userID, req.Date, req.Notes, req.Duration, presetID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create workout.")
		return
	}

	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

// UpdateWorkout patches date, notes and duration.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), userID, workoutID, service.WorkoutUpdate{
		Date:     req.Date,
		Notes:    req.Notes,
		Duration: req.Duration,
	})
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout.")
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// DeleteWorkout removes a workout and all of its sets.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.workoutService.Remove(c.Request.Context(), userID, workoutID); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetWorkoutStats returns per-workout aggregate counts.
func (h *WorkoutHandler) GetWorkoutStats(c *gin.Context) {
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.workoutService.GetStats(c.Request.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout stats.")
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUserStats returns caller-wide totals and favorite exercises.
func (h *WorkoutHandler) GetUserStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.workoutService.Stats(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve stats.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalWorkouts":     stats.TotalWorkouts,
		"totalSets":         stats.TotalSets,
		"favoriteExercises": MapExercisesToResponse(stats.FavoriteExercises),
	})
}

// SyncWorkoutSets reconciles the workout's stored sets with the full desired
// list from the edit screen. Non-transactional by design: a mid-sequence
// failure leaves the steps that already ran committed.
func (h *WorkoutHandler) SyncWorkoutSets(c *gin.Context) {
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req SyncSetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	desired := make([]service.SetInput, 0, len(req.Sets))
	for _, input := range req.Sets {
		exerciseID, err := primitive.ObjectIDFromHex(input.ExerciseID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exerciseId format: "+input.ExerciseID)
			return
		}
		desired = append(desired, service.SetInput{
			ExerciseID: exerciseID,
			SetNumber:  input.SetNumber,
			Reps:       input.Reps,
			Weight:     input.Weight,
			RestTime:   input.RestTime,
		})
	}

	if err := h.workoutService.SyncSets(c.Request.Context(), userID, workoutID, desired); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save sets: "+err.Error())
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// StartFromPreset creates a workout from a preset and expands its template
// sets into real rows. Also non-transactional; see SyncWorkoutSets.
func (h *WorkoutHandler) StartFromPreset(c *gin.Context) {
	var req StartFromPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	presetID, err := primitive.ObjectIDFromHex(req.PresetID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid presetId format.")
		return
	}

	workout, err := h.workoutService.StartFromPreset(c.Request.Context(), userID, presetID, req.Date, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrPresetNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to start workout from preset: "+err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}
