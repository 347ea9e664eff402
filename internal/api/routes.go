package api

import (
	"net/http"

	"fitlog/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full HTTP surface on the given engine.
// Static segments like /workouts/stats are registered alongside /workouts/:id;
// gin resolves static before param so the order here does not matter.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	presetService service.PresetService,
	analyticsService service.AnalyticsService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)
	setHandler := NewSetHandler(workoutService)
	presetHandler := NewPresetHandler(presetService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.POST("/seed", exerciseHandler.SeedExercises)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("/stats", workoutHandler.GetUserStats)
			workoutGroup.POST("/from-preset", workoutHandler.StartFromPreset)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.GET("/:id/stats", workoutHandler.GetWorkoutStats)
			workoutGroup.PUT("/:id/sets", workoutHandler.SyncWorkoutSets)
		}

		setGroup := protected.Group("/sets")
		{
			setGroup.POST("", setHandler.CreateSet)
			setGroup.PUT("/:id", setHandler.UpdateSet)
			setGroup.DELETE("/:id", setHandler.DeleteSet)
		}

		presetGroup := protected.Group("/presets")
		{
			presetGroup.GET("", presetHandler.ListPresets)
			presetGroup.POST("", presetHandler.CreatePreset)
			presetGroup.POST("/from-workout", presetHandler.CreatePresetFromWorkout)
			presetGroup.GET("/:id", presetHandler.GetPreset)
			presetGroup.PUT("/:id", presetHandler.UpdatePreset)
			presetGroup.DELETE("/:id", presetHandler.DeletePreset)
			presetGroup.PUT("/:id/from-workout", presetHandler.UpdatePresetFromWorkout)
		}

		analyticsGroup := protected.Group("/analytics")
		{
			analyticsGroup.GET("/exercise-progress/:exerciseId", analyticsHandler.GetExerciseProgress)
			analyticsGroup.GET("/frequency", analyticsHandler.GetWorkoutFrequency)
		}
	}
}
