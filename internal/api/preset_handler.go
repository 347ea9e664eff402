package api

import (
	"errors"
	"net/http"
	"time"

	"fitlog/gym-tracker/internal/domain"
	"fitlog/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PresetHandler holds the preset service dependency.
type PresetHandler struct {
	presetService service.PresetService
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(presetService service.PresetService) *PresetHandler {
	return &PresetHandler{presetService: presetService}
}

// --- DTOs ---

type PresetSetRequest struct {
	Reps     int     `json:"reps" binding:"required,min=1"`
	Weight   float64 `json:"weight"`
	RestTime *int    `json:"restTime" binding:"omitempty,min=0"`
}

type PresetExerciseRequest struct {
	ExerciseID string             `json:"exerciseId" binding:"required"`
	Sets       []PresetSetRequest `json:"sets" binding:"required"`
}

type CreatePresetRequest struct {
	Name      string                  `json:"name" binding:"required"`
	Notes     string                  `json:"notes"`
	Exercises []PresetExerciseRequest `json:"exercises" binding:"required"`
}

// UpdatePresetRequest is a partial update; a non-nil Exercises array replaces
// the stored one wholesale.
type UpdatePresetRequest struct {
	Name      *string                 `json:"name" binding:"omitempty,min=1"`
	Notes     *string                 `json:"notes"`
	Exercises []PresetExerciseRequest `json:"exercises"`
}

type CreatePresetFromWorkoutRequest struct {
	WorkoutID string `json:"workoutId" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

type UpdatePresetFromWorkoutRequest struct {
	WorkoutID string `json:"workoutId" binding:"required"`
}

type PresetSetResponse struct {
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	RestTime *int    `json:"restTime,omitempty"`
}

type PresetExerciseResponse struct {
	ExerciseID string              `json:"exerciseId"`
	Sets       []PresetSetResponse `json:"sets"`
}

type PresetResponse struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Notes     string                   `json:"notes,omitempty"`
	Exercises []PresetExerciseResponse `json:"exercises"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

type PresetDetailResponse struct {
	PresetResponse
	ExerciseDetails []ExerciseResponse `json:"exerciseDetails"`
}

// MapPresetToResponse converts a domain.WorkoutPreset to PresetResponse DTO.
func MapPresetToResponse(preset *domain.WorkoutPreset) PresetResponse {
	if preset == nil {
		return PresetResponse{}
	}
	exercises := make([]PresetExerciseResponse, len(preset.Exercises))
	for i, pe := range preset.Exercises {
		sets := make([]PresetSetResponse, len(pe.Sets))
		for j, ps := range pe.Sets {
			sets[j] = PresetSetResponse{Reps: ps.Reps, Weight: ps.Weight, RestTime: ps.RestTime}
		}
		exercises[i] = PresetExerciseResponse{
			ExerciseID: pe.ExerciseID.Hex(),
			Sets:       sets,
		}
	}
	return PresetResponse{
		ID:        preset.ID.Hex(),
		Name:      preset.Name,
		Notes:     preset.Notes,
		Exercises: exercises,
		CreatedAt: preset.CreatedAt,
		UpdatedAt: preset.UpdatedAt,
	}
}

// MapPresetsToResponse converts a slice of domain.WorkoutPreset to DTOs.
func MapPresetsToResponse(presets []domain.WorkoutPreset) []PresetResponse {
	responses := make([]PresetResponse, len(presets))
	for i, p := range presets {
		responses[i] = MapPresetToResponse(&p)
	}
	return responses
}

// mapPresetExercises converts request exercise groups into domain values.
func mapPresetExercises(c *gin.Context, reqs []PresetExerciseRequest) ([]domain.PresetExercise, bool) {
	exercises := make([]domain.PresetExercise, 0, len(reqs))
	for _, pe := range reqs {
		exerciseID, err := primitive.ObjectIDFromHex(pe.ExerciseID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exerciseId format: "+pe.ExerciseID)
			return nil, false
		}
		sets := make([]domain.PresetSet, len(pe.Sets))
		for j, ps := range pe.Sets {
			sets[j] = domain.PresetSet{Reps: ps.Reps, Weight: ps.Weight, RestTime: ps.RestTime}
		}
		exercises = append(exercises, domain.PresetExercise{
			ExerciseID: exerciseID,
			Sets:       sets,
		})
	}
	return exercises, true
}

// --- Handler Methods ---

// ListPresets returns the caller's presets, most recently created first.
func (h *PresetHandler) ListPresets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	presets, err := h.presetService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve presets.")
		return
	}

	c.JSON(http.StatusOK, MapPresetsToResponse(presets))
}

// GetPreset returns one preset with the referenced exercises resolved.
func (h *PresetHandler) GetPreset(c *gin.Context) {
	presetID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := h.presetService.Get(c.Request.Context(), userID, presetID)
	if err != nil {
		if errors.Is(err, service.ErrPresetNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve preset.")
		}
		return
	}

	c.JSON(http.StatusOK, PresetDetailResponse{
		PresetResponse:  MapPresetToResponse(&detail.WorkoutPreset),
		ExerciseDetails: MapExercisesToResponse(detail.ExerciseDetails),
	})
}

// CreatePreset stores a new template as given.
func (h *PresetHandler) CreatePreset(c *gin.Context) {
	var req CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	exercises, ok := mapPresetExercises(c, req.Exercises)
	if !ok {
		return
	}

	preset, err := h.presetService.Create(c.Request.Context(), userID, req.Name, req.Notes, exercises)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create preset.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapPresetToResponse(preset))
}

// CreatePresetFromWorkout snapshots an existing workout into a new preset.
func (h *PresetHandler) CreatePresetFromWorkout(c *gin.Context) {
	var req CreatePresetFromWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(req.WorkoutID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workoutId format.")
		return
	}

	preset, err := h.presetService.CreateFromWorkout(c.Request.Context(), userID, workoutID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create preset from workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapPresetToResponse(preset))
}

// UpdatePreset patches name and notes, and replaces exercises when supplied.
func (h *PresetHandler) UpdatePreset(c *gin.Context) {
	presetID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req UpdatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	update := service.PresetUpdate{
		Name:  req.Name,
		Notes: req.Notes,
	}
	if req.Exercises != nil {
		exercises, ok := mapPresetExercises(c, req.Exercises)
		if !ok {
			return
		}
		update.Exercises = exercises
	}

	preset, err := h.presetService.Update(c.Request.Context(), userID, presetID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPresetNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update preset.")
		}
		return
	}

	c.JSON(http.StatusOK, MapPresetToResponse(preset))
}

// UpdatePresetFromWorkout re-derives the preset's exercises from a workout's
// current sets, leaving name and notes untouched.
func (h *PresetHandler) UpdatePresetFromWorkout(c *gin.Context) {
	presetID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req UpdatePresetFromWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(req.WorkoutID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workoutId format.")
		return
	}

	preset, err := h.presetService.UpdateFromWorkout(c.Request.Context(), userID, presetID, workoutID)
	if err != nil {
		if errors.Is(err, service.ErrPresetNotFound) || errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update preset from workout.")
		}
		return
	}

	c.JSON(http.StatusOK, MapPresetToResponse(preset))
}

// DeletePreset removes a preset. Workouts started from it are not touched.
func (h *PresetHandler) DeletePreset(c *gin.Context) {
	presetID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.presetService.Remove(c.Request.Context(), userID, presetID); err != nil {
		if errors.Is(err, service.ErrPresetNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete preset.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
