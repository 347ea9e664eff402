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

// SetHandler exposes single-set operations. Bulk reconciliation lives on the
// workout handler (SyncWorkoutSets).
type SetHandler struct {
	workoutService service.WorkoutService
}

// NewSetHandler creates a new SetHandler.
func NewSetHandler(workoutService service.WorkoutService) *SetHandler {
	return &SetHandler{workoutService: workoutService}
}

// --- DTOs ---

type CreateSetRequest struct {
	WorkoutID  string  `json:"workoutId" binding:"required"`
	ExerciseID string  `json:"exerciseId" binding:"required"`
	SetNumber  int     `json:"setNumber" binding:"required,min=1"`
	Reps       int     `json:"reps" binding:"required,min=1"`
	Weight     float64 `json:"weight"`
	RestTime   *int    `json:"restTime" binding:"omitempty,min=0"`
}

type UpdateSetRequest struct {
	Reps     *int     `json:"reps" binding:"omitempty,min=1"`
	Weight   *float64 `json:"weight"`
	RestTime *int     `json:"restTime" binding:"omitempty,min=0"`
}

// SetResponse is the DTO for returning a logged set.
type SetResponse struct {
	ID         string    `json:"id"`
	WorkoutID  string    `json:"workoutId"`
	ExerciseID string    `json:"exerciseId"`
	SetNumber  int       `json:"setNumber"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	RestTime   *int      `json:"restTime,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MapSetToResponse converts a domain.Set to SetResponse DTO.
func MapSetToResponse(set *domain.Set) SetResponse {
	if set == nil {
		return SetResponse{}
	}
	return SetResponse{
		ID:         set.ID.Hex(),
		WorkoutID:  set.WorkoutID.Hex(),
		ExerciseID: set.ExerciseID.Hex(),
		SetNumber:  set.SetNumber,
		Reps:       set.Reps,
		Weight:     set.Weight,
		RestTime:   set.RestTime,
		CreatedAt:  set.CreatedAt,
	}
}

// MapSetsToResponse converts a slice of domain.Set to response DTOs.
func MapSetsToResponse(sets []domain.Set) []SetResponse {
	responses := make([]SetResponse, len(sets))
	for i, set := range sets {
		responses[i] = MapSetToResponse(&set)
	}
	return responses
}

// --- Handler Methods ---

// CreateSet logs one set against a workout owned by the caller.
func (h *SetHandler) CreateSet(c *gin.Context) {
	var req CreateSetRequest
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
	exerciseID, err := primitive.ObjectIDFromHex(req.ExerciseID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exerciseId format.")
		return
	}

	set, err := h.workoutService.CreateSet(c.Request.Context(), userID, workoutID, service.SetInput{
		ExerciseID: exerciseID,
		SetNumber:  req.SetNumber,
		Reps:       req.Reps,
		Weight:     req.Weight,
		RestTime:   req.RestTime,
	})
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create set.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapSetToResponse(set))
}

// UpdateSet patches reps, weight and rest time of a single set.
func (h *SetHandler) UpdateSet(c *gin.Context) {
	setID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req UpdateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	set, err := h.workoutService.UpdateSet(c.Request.Context(), userID, setID, req.Reps, req.Weight, req.RestTime)
	if err != nil {
		if errors.Is(err, service.ErrSetNotFound) || errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update set.")
		}
		return
	}

	c.JSON(http.StatusOK, MapSetToResponse(set))
}

// DeleteSet removes a single set.
func (h *SetHandler) DeleteSet(c *gin.Context) {
	setID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.workoutService.RemoveSet(c.Request.Context(), userID, setID); err != nil {
		if errors.Is(err, service.ErrSetNotFound) || errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete set.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
