package api

import (
	"net/http"

	"fitlog/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler holds the analytics service dependency.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetExerciseProgress returns per-workout progress points for one exercise.
// An exercise the caller never logged yields an empty array, not an error.
func (h *AnalyticsHandler) GetExerciseProgress(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "exerciseId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	points, err := h.analyticsService.ExerciseProgress(c.Request.Context(), userID, exerciseID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute exercise progress.")
		return
	}

	c.JSON(http.StatusOK, points)
}

// GetWorkoutFrequency returns per-day workout counts, optionally bounded by
// ?startDate= and ?endDate= (inclusive, epoch millis).
func (h *AnalyticsHandler) GetWorkoutFrequency(c *gin.Context) {
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

	points, err := h.analyticsService.WorkoutFrequency(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute workout frequency.")
		return
	}

	c.JSON(http.StatusOK, points)
}
