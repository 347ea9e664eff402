package service

import (
	"context"
	"errors"

	"fitlog/gym-tracker/internal/domain"
	"fitlog/gym-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	// ErrPresetNotFound covers both "does not exist" and "exists but is not
	// yours", for the same reason as ErrWorkoutNotFound.
	ErrPresetNotFound = errors.New("preset not found or unauthorized")
)

// PresetDetail is a preset joined with the resolved Exercise record for each
// referenced exercise ID. Stale references are filtered out.
type PresetDetail struct {
	domain.WorkoutPreset
	ExerciseDetails []domain.Exercise `json:"exerciseDetails"`
}

// PresetUpdate carries the optional fields of a partial preset update.
// Exercises, when present, replaces the whole array; there is no merge.
type PresetUpdate struct {
	Name      *string
	Notes     *string
	Exercises []domain.PresetExercise
}

// PresetService manages reusable workout templates.
type PresetService interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPreset, error)
	Get(ctx context.Context, userID, presetID primitive.ObjectID) (*PresetDetail, error)
	Create(ctx context.Context, userID primitive.ObjectID, name, notes string, exercises []domain.PresetExercise) (*domain.WorkoutPreset, error)
	CreateFromWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, name string) (*domain.WorkoutPreset, error)
	Update(ctx context.Context, userID, presetID primitive.ObjectID, update PresetUpdate) (*domain.WorkoutPreset, error)
	UpdateFromWorkout(ctx context.Context, userID, presetID, workoutID primitive.ObjectID) (*domain.WorkoutPreset, error)
	Remove(ctx context.Context, userID, presetID primitive.ObjectID) error
}

// presetService implements the PresetService interface.
type presetService struct {
	presetRepo   repository.PresetRepository
	workoutRepo  repository.WorkoutRepository
	setRepo      repository.SetRepository
	exerciseRepo repository.ExerciseRepository
}

// NewPresetService creates a new instance of presetService.
func NewPresetService(
	presetRepo repository.PresetRepository,
	workoutRepo repository.WorkoutRepository,
	setRepo repository.SetRepository,
	exerciseRepo repository.ExerciseRepository,
) PresetService {
	return &presetService{
		presetRepo:   presetRepo,
		workoutRepo:  workoutRepo,
		setRepo:      setRepo,
		exerciseRepo: exerciseRepo,
	}
}

// ownedPreset fetches a preset and verifies ownership.
func (s *presetService) ownedPreset(ctx context.Context, userID, presetID primitive.ObjectID) (*domain.WorkoutPreset, error) {
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
	return preset, nil
}

// List returns the caller's presets, most recently created first.
func (s *presetService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPreset, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}
	return s.presetRepo.GetByUserID(ctx, userID)
}

// Get returns a preset plus the resolved Exercise record for each referenced
// exercise. References to deleted exercises are quietly dropped.
func (s *presetService) Get(ctx context.Context, userID, presetID primitive.ObjectID) (*PresetDetail, error) {
	preset, err := s.ownedPreset(ctx, userID, presetID)
	if err != nil {
		return nil, err
	}

	details := make([]domain.Exercise, 0, len(preset.Exercises))
	for _, presetExercise := range preset.Exercises {
		exercise, err := s.exerciseRepo.GetByID(ctx, presetExercise.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		details = append(details, *exercise)
	}

	return &PresetDetail{
		WorkoutPreset:   *preset,
		ExerciseDetails: details,
	}, nil
}

// Create stores the given template verbatim.
func (s *presetService) Create(ctx context.Context, userID primitive.ObjectID, name, notes string, exercises []domain.PresetExercise) (*domain.WorkoutPreset, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}
	if name == "" {
		return nil, ErrValidationFailed
	}

	preset := &domain.WorkoutPreset{
		UserID:    userID,
		Name:      name,
		Notes:     notes,
		Exercises: exercises,
	}

	presetID, err := s.presetRepo.Create(ctx, preset)
	if err != nil {
		return nil, err
	}
	return s.presetRepo.GetByID(ctx, presetID)
}

// groupSetsByExercise flattens a workout's sets into preset template groups.
// Grouping preserves first-seen exercise order and, within a group, the sets'
// stored order; set numbers are dropped, array order carries the sequence.
func groupSetsByExercise(sets []domain.Set) []domain.PresetExercise {
	indexByExercise := make(map[primitive.ObjectID]int)
	groups := make([]domain.PresetExercise, 0)

	for _, set := range sets {
		idx, ok := indexByExercise[set.ExerciseID]
		if !ok {
			idx = len(groups)
			indexByExercise[set.ExerciseID] = idx
			groups = append(groups, domain.PresetExercise{
				ExerciseID: set.ExerciseID,
				Sets:       []domain.PresetSet{},
			})
		}
		groups[idx].Sets = append(groups[idx].Sets, domain.PresetSet{
			Reps:     set.Reps,
			Weight:   set.Weight,
			RestTime: set.RestTime,
		})
	}

	return groups
}

// deriveFromWorkout reads an owned workout's sets and produces the template
// grouping plus the workout's notes (the default notes for a derived preset).
func (s *presetService) deriveFromWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) ([]domain.PresetExercise, string, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrWorkoutNotFound
		}
		return nil, "", err
	}
	if workout.UserID != userID {
		return nil, "", ErrWorkoutNotFound
	}

	sets, err := s.setRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return nil, "", err
	}

	return groupSetsByExercise(sets), workout.Notes, nil
}

// CreateFromWorkout snapshots an existing workout into a new named preset.
// Later edits to the workout never touch the preset.
func (s *presetService) CreateFromWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, name string) (*domain.WorkoutPreset, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	exercises, workoutNotes, err := s.deriveFromWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	return s.Create(ctx, userID, name, workoutNotes, exercises)
}

// Update patches name and notes, and replaces the exercises array when one
// is supplied.
func (s *presetService) Update(ctx context.Context, userID, presetID primitive.ObjectID, update PresetUpdate) (*domain.WorkoutPreset, error) {
	preset, err := s.ownedPreset(ctx, userID, presetID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, ErrValidationFailed
		}
		preset.Name = *update.Name
	}
	if update.Notes != nil {
		preset.Notes = *update.Notes
	}
	if update.Exercises != nil {
		preset.Exercises = update.Exercises
	}

	if err := s.presetRepo.Update(ctx, preset); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}
	return preset, nil
}

// UpdateFromWorkout re-derives the exercise grouping from the current state
// of the workout and overwrites the preset's exercises array with it. Name
// and notes are left alone.
func (s *presetService) UpdateFromWorkout(ctx context.Context, userID, presetID, workoutID primitive.ObjectID) (*domain.WorkoutPreset, error) {
	preset, err := s.ownedPreset(ctx, userID, presetID)
	if err != nil {
		return nil, err
	}

	exercises, _, err := s.deriveFromWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	preset.Exercises = exercises
	if err := s.presetRepo.Update(ctx, preset); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}
	return preset, nil
}

// Remove deletes a preset. Workouts started from it keep their backlink;
// the dangling reference is tolerated at read time.
func (s *presetService) Remove(ctx context.Context, userID, presetID primitive.ObjectID) error {
	if _, err := s.ownedPreset(ctx, userID, presetID); err != nil {
		return err
	}

	if err := s.presetRepo.Delete(ctx, presetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPresetNotFound
		}
		return err
	}
	return nil
}
