package service

import (
	"context"
	"errors"
	"strings"

	"fitlog/gym-tracker/internal/domain"
	"fitlog/gym-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrExerciseAccessDenied covers both "not yours" and "does not exist":
	// callers must not be able to probe the catalog for other users' custom
	// exercises, and seeded exercises (no owner) are immutable for everyone.
	ErrExerciseAccessDenied = errors.New("unauthorized or not a custom exercise")
	ErrValidationFailed     = errors.New("validation failed")
)

// ExerciseUpdate carries the optional fields of a partial exercise update.
// Nil means "leave unchanged".
type ExerciseUpdate struct {
	Name        *string
	Category    *domain.Category
	MuscleGroup *string
}

// SeedResult reports the outcome of seeding the built-in catalog.
type SeedResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ExerciseService manages the exercise catalog: seeded/global entries plus
// user-owned custom ones.
type ExerciseService interface {
	List(ctx context.Context, category *domain.Category, search string) ([]domain.Exercise, error)
	Create(ctx context.Context, userID primitive.ObjectID, name string, category domain.Category, muscleGroup string) (*domain.Exercise, error)
	Update(ctx context.Context, userID, exerciseID primitive.ObjectID, update ExerciseUpdate) (*domain.Exercise, error)
	Remove(ctx context.Context, userID, exerciseID primitive.ObjectID) error
	Seed(ctx context.Context, userID primitive.ObjectID) (*SeedResult, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// List returns the whole catalog, optionally narrowed by exact category and
// case-insensitive substring match on the name. The catalog is tens of rows,
// so filtering in memory is fine.
func (s *exerciseService) List(ctx context.Context, category *domain.Category, search string) ([]domain.Exercise, error) {
	if category != nil && !category.IsValid() {
		return nil, ErrValidationFailed
	}

	exercises, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if category != nil {
		filtered := exercises[:0]
		for _, ex := range exercises {
			if ex.Category == *category {
				filtered = append(filtered, ex)
			}
		}
		exercises = filtered
	}

	if search != "" {
		searchLower := strings.ToLower(search)
		filtered := exercises[:0]
		for _, ex := range exercises {
			if strings.Contains(strings.ToLower(ex.Name), searchLower) {
				filtered = append(filtered, ex)
			}
		}
		exercises = filtered
	}

	return exercises, nil
}

// Create stores a new custom exercise owned by the caller. Names are not
// deduplicated here; only seeding checks for existing names.
func (s *exerciseService) Create(ctx context.Context, userID primitive.ObjectID, name string, category domain.Category, muscleGroup string) (*domain.Exercise, error) {
	if name == "" || !category.IsValid() {
		return nil, ErrValidationFailed
	}
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to create an exercise")
	}

	exercise := &domain.Exercise{
		Name:        name,
		Category:    category,
		MuscleGroup: muscleGroup,
		UserID:      &userID,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, exerciseID)
}

// Update patches a custom exercise owned by the caller. Seeded exercises have
// no owner and can never be updated through this path.
func (s *exerciseService) Update(ctx context.Context, userID, exerciseID primitive.ObjectID, update ExerciseUpdate) (*domain.Exercise, error) {
	if userID == primitive.NilObjectID || exerciseID == primitive.NilObjectID {
		return nil, errors.New("user ID and exercise ID are required")
	}

	existing, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseAccessDenied
		}
		return nil, err
	}
	if !existing.OwnedBy(userID) {
		return nil, ErrExerciseAccessDenied
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, ErrValidationFailed
		}
		existing.Name = *update.Name
	}
	if update.Category != nil {
		if !update.Category.IsValid() {
			return nil, ErrValidationFailed
		}
		existing.Category = *update.Category
	}
	if update.MuscleGroup != nil {
		existing.MuscleGroup = *update.MuscleGroup
	}

	if err := s.exerciseRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseAccessDenied
		}
		return nil, err
	}
	return existing, nil
}

// Remove deletes a custom exercise owned by the caller. Sets and presets
// referencing it are left alone; the dangling references are filtered out of
// detail views at read time.
func (s *exerciseService) Remove(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	if userID == primitive.NilObjectID || exerciseID == primitive.NilObjectID {
		return errors.New("user ID and exercise ID are required")
	}

	existing, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseAccessDenied
		}
		return err
	}
	if !existing.OwnedBy(userID) {
		return ErrExerciseAccessDenied
	}

	if err := s.exerciseRepo.Delete(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseAccessDenied
		}
		return err
	}
	return nil
}

// Seed inserts the built-in catalog, skipping any entry whose name already
// exists, so re-running it is harmless. Seeded rows carry no owner. The
// returned count is the catalog size, not the number of rows inserted.
func (s *exerciseService) Seed(ctx context.Context, userID primitive.ObjectID) (*SeedResult, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to seed exercises")
	}

	for _, entry := range seedCatalog {
		exists, err := s.exerciseRepo.ExistsByName(ctx, entry.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		exercise := &domain.Exercise{
			Name:        entry.Name,
			Category:    entry.Category,
			MuscleGroup: entry.MuscleGroup,
		}
		if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
			return nil, err
		}
	}

	return &SeedResult{
		Message: "Exercises seeded successfully",
		Count:   len(seedCatalog),
	}, nil
}
