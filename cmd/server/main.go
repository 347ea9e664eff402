package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitlog/gym-tracker/internal/api"
	"fitlog/gym-tracker/internal/config"
	"fitlog/gym-tracker/internal/repository/mongo"
	"fitlog/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.WithError(err).Fatal("could not load config")
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("jwt.secret must be set")
	}
	logger.Info("configuration loaded")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logger.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		logger.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Info("database connection established")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureSetIndexes(ctx, appDB.Collection("sets"))
		mongo.EnsurePresetIndexes(ctx, appDB.Collection("workout_presets"))
		logger.Info("index creation process completed")
	}()

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	setRepo := mongo.NewMongoSetRepository(appDB)
	presetRepo := mongo.NewMongoPresetRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	exerciseService := service.NewExerciseService(exerciseRepo)
	workoutService := service.NewWorkoutService(workoutRepo, setRepo, exerciseRepo, presetRepo)
	presetService := service.NewPresetService(presetRepo, workoutRepo, setRepo, exerciseRepo)
	analyticsService := service.NewAnalyticsService(workoutRepo, setRepo)

	// --- Initialize Gin Engine ---
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestIDMiddleware())
	router.Use(api.RequestLogger(logger))

	api.SetupRoutes(router, cfg.JWT.Secret, authService, exerciseService, workoutService, presetService, analyticsService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.WithField("address", cfg.Server.Address).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("listen and serve error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}

	logger.Info("server exiting")
}
