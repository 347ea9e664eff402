package api

import (
	"errors"
	"net/http"
	"time"

	"fitlog/gym-tracker/internal/domain"
	"fitlog/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=Chest Back Legs Shoulders Arms Core"`
	MuscleGroup string `json:"muscleGroup" binding:"omitempty"`
}

// UpdateExerciseRequest is a partial update; absent fields stay unchanged.
type UpdateExerciseRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Category    *string `json:"category" binding:"omitempty,oneof=Chest Back Legs Shoulders Arms Core"`
	MuscleGroup *string `json:"muscleGroup"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	MuscleGroup string    `json:"muscleGroup,omitempty"`
	UserID      string    `json:"userId,omitempty"` // Empty for seeded/global exercises
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	resp := ExerciseResponse{
		ID:          ex.ID.Hex(),
		Name:        ex.Name,
		Category:    string(ex.Category),
		MuscleGroup: ex.MuscleGroup,
		CreatedAt:   ex.CreatedAt,
		UpdatedAt:   ex.UpdatedAt,
	}
	if ex.UserID != nil {
		resp.UserID = ex.UserID.Hex()
	}
	return resp
}

// MapExercisesToResponse converts a slice of domain.Exercise to response DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(&ex)
	}
	return responses
}

// --- Handler Methods ---

// ListExercises returns the whole catalog, optionally filtered by ?category=
// (exact) and ?search= (case-insensitive substring on the name).
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	var category *domain.Category
	if raw := c.Query("category"); raw != "" {
		cat := domain.Category(raw)
		if !cat.IsValid() {
			abortWithError(c, http.StatusBadRequest, "Unknown category: "+raw)
			return
		}
		category = &cat
	}

	exercises, err := h.exerciseService.List(c.Request.Context(), category, c.Query("search"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}

	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// CreateExercise stores a new custom exercise owned by the caller.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	exercise, err := h.exerciseService.Create(
		c.Request.Context(),
		userID,
		req.Name,
		domain.Category(req.Category),
		req.MuscleGroup,
	)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// UpdateExercise patches a custom exercise owned by the caller.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	update := service.ExerciseUpdate{
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
	}
	if req.Category != nil {
		cat := domain.Category(*req.Category)
		update.Category = &cat
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), userID, exerciseID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseAccessDenied):
			abortWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// DeleteExercise removes a custom exercise owned by the caller.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.exerciseService.Remove(c.Request.Context(), userID, exerciseID); err != nil {
		if errors.Is(err, service.ErrExerciseAccessDenied) {
			abortWithError(c, http.StatusForbidden, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// SeedExercises inserts the built-in catalog, skipping names that already
// exist. Safe to call repeatedly.
func (h *ExerciseHandler) SeedExercises(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.exerciseService.Seed(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to seed exercises.")
		return
	}

	c.JSON(http.StatusOK, result)
}
