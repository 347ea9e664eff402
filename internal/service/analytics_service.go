package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"fitlog/gym-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressPoint is one workout's worth of progress for a single exercise.
type ProgressPoint struct {
	Date        int64   `json:"date"`
	MaxWeight   float64 `json:"maxWeight"`
	TotalVolume float64 `json:"totalVolume"`
	Sets        int     `json:"sets"`
}

// FrequencyPoint is the workout count for one calendar day (UTC).
type FrequencyPoint struct {
	Date  string `json:"date"` // "2006-01-02"
	Count int    `json:"count"`
}

// AnalyticsService derives read-only aggregations over workouts and sets.
type AnalyticsService interface {
	ExerciseProgress(ctx context.Context, userID, exerciseID primitive.ObjectID) ([]ProgressPoint, error)
	WorkoutFrequency(ctx context.Context, userID primitive.ObjectID, startDate, endDate *int64) ([]FrequencyPoint, error)
}

// analyticsService implements the AnalyticsService interface.
type analyticsService struct {
	workoutRepo repository.WorkoutRepository
	setRepo     repository.SetRepository
}

// NewAnalyticsService creates a new instance of analyticsService.
func NewAnalyticsService(workoutRepo repository.WorkoutRepository, setRepo repository.SetRepository) AnalyticsService {
	return &analyticsService{
		workoutRepo: workoutRepo,
		setRepo:     setRepo,
	}
}

// ExerciseProgress joins the caller's workouts with the sets of one exercise
// and accumulates, per workout, the max weight, total volume (Σ reps×weight)
// and set count. One point per workout containing at least one set of the
// exercise, ascending by workout date. The scan is workouts × exercise-sets,
// which is fine for a personal log but worth revisiting if data ever grows.
func (s *analyticsService) ExerciseProgress(ctx context.Context, userID, exerciseID primitive.ObjectID) ([]ProgressPoint, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}

	workouts, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dateByWorkout := make(map[primitive.ObjectID]int64, len(workouts))
	for _, w := range workouts {
		dateByWorkout[w.ID] = w.Date
	}

	sets, err := s.setRepo.GetByExerciseID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	progressByWorkout := make(map[primitive.ObjectID]*ProgressPoint)
	for _, set := range sets {
		date, ok := dateByWorkout[set.WorkoutID]
		if !ok {
			continue // Another user's workout.
		}

		volume := float64(set.Reps) * set.Weight
		point, ok := progressByWorkout[set.WorkoutID]
		if !ok {
			progressByWorkout[set.WorkoutID] = &ProgressPoint{
				Date:        date,
				MaxWeight:   set.Weight,
				TotalVolume: volume,
				Sets:        1,
			}
			continue
		}

		if set.Weight > point.MaxWeight {
			point.MaxWeight = set.Weight
		}
		point.TotalVolume += volume
		point.Sets++
	}

	points := make([]ProgressPoint, 0, len(progressByWorkout))
	for _, point := range progressByWorkout {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points, nil
}

// WorkoutFrequency buckets the caller's workouts by UTC calendar day inside
// the optional inclusive range. The result is sparse: days without workouts
// do not appear (the heatmap UI fills those in). Points are ordered by date
// ascending so the output is deterministic.
func (s *analyticsService) WorkoutFrequency(ctx context.Context, userID primitive.ObjectID, startDate, endDate *int64) ([]FrequencyPoint, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}

	workouts, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	frequency := make(map[string]int)
	for _, w := range workouts {
		if startDate != nil && w.Date < *startDate {
			continue
		}
		if endDate != nil && w.Date > *endDate {
			continue
		}
		day := time.UnixMilli(w.Date).UTC().Format("2006-01-02")
		frequency[day]++
	}

	points := make([]FrequencyPoint, 0, len(frequency))
	for day, count := range frequency {
		points = append(points, FrequencyPoint{Date: day, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points, nil
}
