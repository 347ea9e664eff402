package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"fitlog/gym-tracker/internal/domain"
	"fitlog/gym-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	// ErrWorkoutNotFound covers both "does not exist" and "exists but is not
	// yours": the two cases are deliberately indistinguishable so callers
	// cannot probe for other users' workouts.
	ErrWorkoutNotFound = errors.New("workout not found or unauthorized")
	ErrSetNotFound     = errors.New("set not found")
)

// WorkoutDetail is a workout joined with its sets and the distinct exercises
// those sets reference. Exercises that no longer exist are filtered out.
type WorkoutDetail struct {
	domain.Workout
	Sets      []domain.Set      `json:"sets"`
	Exercises []domain.Exercise `json:"exercises"`
}

// WorkoutStats are the per-workout aggregate counts.
type WorkoutStats struct {
	ExerciseCount int `json:"exerciseCount"`
	SetCount      int `json:"setCount"`
}

// UserStats are the caller-wide aggregate counts.
type UserStats struct {
	TotalWorkouts     int               `json:"totalWorkouts"`
	TotalSets         int               `json:"totalSets"`
	FavoriteExercises []domain.Exercise `json:"favoriteExercises"`
}

// WorkoutUpdate carries the optional fields of a partial workout update.
type WorkoutUpdate struct {
	Date     *int64
	Notes    *string
	Duration *int
}

// SetInput is one desired set row, keyed by (ExerciseID, SetNumber) for the
// edit-save diff and used verbatim for plain creation.
type SetInput struct {
	ExerciseID primitive.ObjectID `json:"exerciseId"`
	SetNumber  int                `json:"setNumber"`
	Reps       int                `json:"reps"`
	Weight     float64            `json:"weight"`
	RestTime   *int               `json:"restTime,omitempty"`
}

// WorkoutService manages workout sessions and their logged sets.
type WorkoutService interface {
	List(ctx context.Context, userID primitive.ObjectID, startDate, endDate *int64) ([]domain.Workout, error)
	Get(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetail, error)
	Create(ctx context.Context, userID primitive.ObjectID, date int64, notes string, duration *int, presetID *primitive.ObjectID) (*domain.Workout, error)
	Update(ctx context.Context, userID, workoutID primitive.ObjectID, update WorkoutUpdate) (*domain.Workout, error)
	Remove(ctx context.Context, userID, workoutID primitive.ObjectID) error
	GetStats(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutStats, error)
	Stats(ctx context.Context, userID primitive.ObjectID) (*UserStats, error)

	CreateSet(ctx context.Context, userID primitive.ObjectID, workoutID primitive.ObjectID, input SetInput) (*domain.Set, error)
	UpdateSet(ctx context.Context, userID, setID primitive.ObjectID, reps *int, weight *float64, restTime *int) (*domain.Set, error)
	RemoveSet(ctx context.Context, userID, setID primitive.ObjectID) error
	SyncSets(ctx context.Context, userID, workoutID primitive.ObjectID, desired []SetInput) error

	StartFromPreset(ctx context.Context, userID, presetID primitive.ObjectID, date int64, notes string) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	setRepo      repository.SetRepository
	exerciseRepo repository.ExerciseRepository
	presetRepo   repository.PresetRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	setRepo repository.SetRepository,
	exerciseRepo repository.ExerciseRepository,
	presetRepo repository.PresetRepository,
) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		setRepo:      setRepo,
		exerciseRepo: exerciseRepo,
		presetRepo:   presetRepo,
	}
}

// ownedWorkout fetches a workout and verifies ownership, collapsing "absent"
// and "not yours" into ErrWorkoutNotFound.
func (s *workoutService) ownedWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

// List returns the caller's workouts newest first, bounded by an inclusive
// date range when given. The range filter runs after the per-user fetch,
// which is fine at the scale of a personal training log.
func (s *workoutService) List(ctx context.Context, userID primitive.ObjectID, startDate, endDate *int64) ([]domain.Workout, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}

	workouts, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if startDate != nil || endDate != nil {
		filtered := workouts[:0]
		for _, w := range workouts {
			if startDate != nil && w.Date < *startDate {
				continue
			}
			if endDate != nil && w.Date > *endDate {
				continue
			}
			filtered = append(filtered, w)
		}
		workouts = filtered
	}

	return workouts, nil
}

// Get returns a workout joined with its sets and the distinct exercises those
// sets reference. Deleted exercises simply disappear from the join.
func (s *workoutService) Get(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetail, error) {
	workout, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	sets, err := s.setRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	seen := make(map[primitive.ObjectID]bool)
	exercises := make([]domain.Exercise, 0)
	for _, set := range sets {
		if seen[set.ExerciseID] {
			continue
		}
		seen[set.ExerciseID] = true

		exercise, err := s.exerciseRepo.GetByID(ctx, set.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue // Dangling reference, dropped from the view.
			}
			return nil, err
		}
		exercises = append(exercises, *exercise)
	}

	return &WorkoutDetail{
		Workout:   *workout,
		Sets:      sets,
		Exercises: exercises,
	}, nil
}

// Create inserts a new workout. Even when presetID is given, no sets are
// created here; StartFromPreset is the helper that expands a preset.
func (s *workoutService) Create(ctx context.Context, userID primitive.ObjectID, date int64, notes string, duration *int, presetID *primitive.ObjectID) (*domain.Workout, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}

	workout := &domain.Workout{
		UserID:   userID,
		Date:     date,
		Notes:    notes,
		Duration: duration,
		PresetID: presetID,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	return s.workoutRepo.GetByID(ctx, workoutID)
}

// Update patches date, notes and duration of an owned workout.
func (s *workoutService) Update(ctx context.Context, userID, workoutID primitive.ObjectID, update WorkoutUpdate) (*domain.Workout, error) {
	workout, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	if update.Date != nil {
		workout.Date = *update.Date
	}
	if update.Notes != nil {
		workout.Notes = *update.Notes
	}
	if update.Duration != nil {
		workout.Duration = update.Duration
	}

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// Remove deletes a workout and cascades to its sets. Sets go first so an
// interruption cannot leave sets pointing at a deleted workout.
func (s *workoutService) Remove(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return err
	}

	if err := s.setRepo.DeleteByWorkoutID(ctx, workoutID); err != nil {
		return err
	}

	if err := s.workoutRepo.Delete(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

// GetStats returns the distinct exercise count and total set count of one
// owned workout.
func (s *workoutService) GetStats(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutStats, error) {
	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	sets, err := s.setRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	unique := make(map[primitive.ObjectID]bool)
	for _, set := range sets {
		unique[set.ExerciseID] = true
	}

	return &WorkoutStats{
		ExerciseCount: len(unique),
		SetCount:      len(sets),
	}, nil
}

// Stats returns caller-wide totals and the five most logged exercises by set
// count. Ties are broken by first appearance in the caller's set history,
// which keeps the ranking deterministic.
func (s *workoutService) Stats(ctx context.Context, userID primitive.ObjectID) (*UserStats, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}

	workouts, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	type exerciseCount struct {
		id        primitive.ObjectID
		count     int
		firstSeen int
	}
	counts := make(map[primitive.ObjectID]*exerciseCount)
	order := 0
	totalSets := 0

	// Workouts come back newest first; walk them oldest first so "first seen"
	// means first ever logged.
	for i := len(workouts) - 1; i >= 0; i-- {
		sets, err := s.setRepo.GetByWorkoutID(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		totalSets += len(sets)
		for _, set := range sets {
			entry, ok := counts[set.ExerciseID]
			if !ok {
				entry = &exerciseCount{id: set.ExerciseID, firstSeen: order}
				order++
				counts[set.ExerciseID] = entry
			}
			entry.count++
		}
	}

	ranked := make([]*exerciseCount, 0, len(counts))
	for _, entry := range counts {
		ranked = append(ranked, entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	favorites := make([]domain.Exercise, 0, len(ranked))
	for _, entry := range ranked {
		exercise, err := s.exerciseRepo.GetByID(ctx, entry.id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue // Exercise was deleted; drop it from favorites.
			}
			return nil, err
		}
		favorites = append(favorites, *exercise)
	}

	return &UserStats{
		TotalWorkouts:     len(workouts),
		TotalSets:         totalSets,
		FavoriteExercises: favorites,
	}, nil
}

// CreateSet logs one set against an owned workout.
func (s *workoutService) CreateSet(ctx context.Context, userID primitive.ObjectID, workoutID primitive.ObjectID, input SetInput) (*domain.Set, error) {
	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	set := &domain.Set{
		WorkoutID:  workoutID,
		ExerciseID: input.ExerciseID,
		SetNumber:  input.SetNumber,
		Reps:       input.Reps,
		Weight:     input.Weight,
		RestTime:   input.RestTime,
	}

	setID, err := s.setRepo.Create(ctx, set)
	if err != nil {
		return nil, err
	}
	return s.setRepo.GetByID(ctx, setID)
}

// ownedSet fetches a set and verifies the caller owns its parent workout.
// A missing set is reported as such; a foreign parent is not.
func (s *workoutService) ownedSet(ctx context.Context, userID, setID primitive.ObjectID) (*domain.Set, error) {
	set, err := s.setRepo.GetByID(ctx, setID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	if _, err := s.ownedWorkout(ctx, userID, set.WorkoutID); err != nil {
		return nil, err
	}
	return set, nil
}

// UpdateSet patches reps, weight and rest time of a set in place.
func (s *workoutService) UpdateSet(ctx context.Context, userID, setID primitive.ObjectID, reps *int, weight *float64, restTime *int) (*domain.Set, error) {
	set, err := s.ownedSet(ctx, userID, setID)
	if err != nil {
		return nil, err
	}

	if reps != nil {
		set.Reps = *reps
	}
	if weight != nil {
		set.Weight = *weight
	}
	if restTime != nil {
		set.RestTime = restTime
	}

	if err := s.setRepo.Update(ctx, set); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	return set, nil
}

// RemoveSet deletes a single set. Renumbering the survivors is the client's
// convention, not enforced here.
func (s *workoutService) RemoveSet(ctx context.Context, userID, setID primitive.ObjectID) error {
	if _, err := s.ownedSet(ctx, userID, setID); err != nil {
		return err
	}

	if err := s.setRepo.Delete(ctx, setID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSetNotFound
		}
		return err
	}
	return nil
}

// syncKey identifies a set within a workout for the edit-save diff.
type syncKey struct {
	exerciseID primitive.ObjectID
	setNumber  int
}

// SyncSets reconciles the stored sets of a workout with the full desired
// list, matching by (exerciseId, setNumber): matches are patched in place,
// unmatched stored sets are deleted, unmatched desired sets are inserted.
// Reordering sets within an exercise renumbers them and therefore shows up
// as delete+insert for everything after the changed position; that is the
// accepted behavior, not a defect.
//
// The steps run sequentially with no transaction: the first failure aborts
// and leaves every step that already ran committed.
func (s *workoutService) SyncSets(ctx context.Context, userID, workoutID primitive.ObjectID, desired []SetInput) error {
	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return err
	}

	existing, err := s.setRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return err
	}

	desiredByKey := make(map[syncKey]SetInput, len(desired))
	for _, input := range desired {
		desiredByKey[syncKey{input.ExerciseID, input.SetNumber}] = input
	}

	matched := make(map[syncKey]bool, len(existing))
	for i := range existing {
		set := &existing[i]
		key := syncKey{set.ExerciseID, set.SetNumber}
		input, ok := desiredByKey[key]
		if !ok {
			if err := s.setRepo.Delete(ctx, set.ID); err != nil {
				return fmt.Errorf("delete set %s: %w", set.ID.Hex(), err)
			}
			continue
		}
		matched[key] = true

		set.Reps = input.Reps
		set.Weight = input.Weight
		set.RestTime = input.RestTime
		if err := s.setRepo.Update(ctx, set); err != nil {
			return fmt.Errorf("update set %s: %w", set.ID.Hex(), err)
		}
	}

	for _, input := range desired {
		key := syncKey{input.ExerciseID, input.SetNumber}
		if matched[key] {
			continue
		}
		set := &domain.Set{
			WorkoutID:  workoutID,
			ExerciseID: input.ExerciseID,
			SetNumber:  input.SetNumber,
			Reps:       input.Reps,
			Weight:     input.Weight,
			RestTime:   input.RestTime,
		}
		if _, err := s.setRepo.Create(ctx, set); err != nil {
			return fmt.Errorf("insert set %d of exercise %s: %w", input.SetNumber, input.ExerciseID.Hex(), err)
		}
	}

	return nil
}

// StartFromPreset creates a workout backlinked to the preset and expands the
// preset's template sets into real set rows, one insert per set in array
// order with sequential 1-based set numbers per exercise. Like SyncSets this
// is not transactional: a failure partway leaves the workout with the prefix
// of sets that were already created.
func (s *workoutService) StartFromPreset(ctx context.Context, userID, presetID primitive.ObjectID, date int64, notes string) (*domain.Workout, error) {
	preset, err := s.presetRepo.GetByID(ctx, presetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}
	if preset.UserID != userID {
		return nil, ErrPresetNotFound
	}

	workout, err := s.Create(ctx, userID, date, notes, nil, &presetID)
	if err != nil {
		return nil, err
	}

	for _, presetExercise := range preset.Exercises {
		for i, templateSet := range presetExercise.Sets {
			set := &domain.Set{
				WorkoutID:  workout.ID,
				ExerciseID: presetExercise.ExerciseID,
				SetNumber:  i + 1,
				Reps:       templateSet.Reps,
				Weight:     templateSet.Weight,
				RestTime:   templateSet.RestTime,
			}
			if _, err := s.setRepo.Create(ctx, set); err != nil {
				return nil, fmt.Errorf("expand preset set %d of exercise %s: %w", i+1, presetExercise.ExerciseID.Hex(), err)
			}
		}
	}

	return workout, nil
}
