package repository

import (
	"context"

	"fitlog/gym-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ExerciseRepository defines the interface for interacting with the exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	// GetAll returns the whole catalog: seeded/global exercises plus every
	// user's custom ones. The catalog is small by design, so filtering
	// happens in the service layer.
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	// ExistsByName reports whether any exercise with exactly this name is
	// already stored. Used by seeding to stay idempotent.
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutRepository defines the interface for interacting with workout sessions.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	// GetByUserID returns all workouts of one user, newest first.
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SetRepository defines the interface for interacting with logged sets.
type SetRepository interface {
	Create(ctx context.Context, set *domain.Set) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Set, error)
	// GetByWorkoutID returns the sets of a workout in insertion order.
	GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.Set, error)
	// GetByExerciseID returns every stored set of one exercise, across all
	// workouts and users. Ownership filtering is the caller's job.
	GetByExerciseID(ctx context.Context, exerciseID primitive.ObjectID) ([]domain.Set, error)
	Update(ctx context.Context, set *domain.Set) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DeleteByWorkoutID removes all sets of a workout. Used by the cascade
	// before the workout record itself is deleted.
	DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error
}

// PresetRepository defines the interface for interacting with workout presets.
type PresetRepository interface {
	Create(ctx context.Context, preset *domain.WorkoutPreset) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPreset, error)
	// GetByUserID returns all presets of one user, newest first.
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPreset, error)
	Update(ctx context.Context, preset *domain.WorkoutPreset) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
