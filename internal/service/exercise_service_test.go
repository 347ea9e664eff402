package service

import (
	"context"
	"testing"

	"fitlog/gym-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSeedIsIdempotent(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	result, err := svc.Seed(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, len(seedCatalog), result.Count)
	assert.Len(t, repo.items, len(seedCatalog))

	// Running it again inserts nothing but reports the same count.
	result, err = svc.Seed(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, len(seedCatalog), result.Count)
	assert.Len(t, repo.items, len(seedCatalog))
}

func TestSeededExercisesHaveNoOwner(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo)

	_, err := svc.Seed(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)

	for _, ex := range repo.items {
		assert.Nil(t, ex.UserID, "seeded exercise %q must be global", ex.Name)
	}
}

func TestCreateExerciseOwnedByCaller(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo)
	userID := primitive.NewObjectID()

	ex, err := svc.Create(context.Background(), userID, "Zercher Squat", domain.CategoryLegs, "Quadriceps")
	require.NoError(t, err)
	require.NotNil(t, ex.UserID)
	assert.Equal(t, userID, *ex.UserID)
	assert.Equal(t, "Zercher Squat", ex.Name)
	assert.False(t, ex.ID.IsZero())
}

func TestCreateExerciseRejectsBadInput(t *testing.T) {
	svc := NewExerciseService(newFakeExerciseRepo())
	userID := primitive.NewObjectID()

	_, err := svc.Create(context.Background(), userID, "", domain.CategoryLegs, "")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Create(context.Background(), userID, "Leg Press", domain.Category("Cardio"), "")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestListFiltersByCategoryAndSearch(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := svc.Create(ctx, userID, "Bench Press", domain.CategoryChest, "Pectorals")
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, "Incline Bench Press", domain.CategoryChest, "Pectorals")
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, "Deadlift", domain.CategoryBack, "Lower Back")
	require.NoError(t, err)

	chest := domain.CategoryChest
	exercises, err := svc.List(ctx, &chest, "")
	require.NoError(t, err)
	assert.Len(t, exercises, 2)

	// Search is case-insensitive substring on the name.
	exercises, err = svc.List(ctx, nil, "bench")
	require.NoError(t, err)
	assert.Len(t, exercises, 2)

	exercises, err = svc.List(ctx, &chest, "incline")
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Incline Bench Press", exercises[0].Name)
}

func TestListRejectsUnknownCategory(t *testing.T) {
	svc := NewExerciseService(newFakeExerciseRepo())

	bogus := domain.Category("Cardio")
	_, err := svc.List(context.Background(), &bogus, "")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestUpdateExerciseRejectsForeignOwner(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	ex, err := svc.Create(ctx, owner, "Cable Fly", domain.CategoryChest, "Pectorals")
	require.NoError(t, err)

	newName := "Low Cable Fly"
	_, err = svc.Update(ctx, stranger, ex.ID, ExerciseUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrExerciseAccessDenied)

	// Unchanged for the owner.
	stored, err := repo.GetByID(ctx, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cable Fly", stored.Name)
}

func TestUpdateExerciseRejectsSeeded(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	// A seeded exercise has no owner and is immutable for everyone.
	seeded := &domain.Exercise{Name: "Push-ups", Category: domain.CategoryChest}
	seededID, err := repo.Create(ctx, seeded)
	require.NoError(t, err)

	newName := "Push Ups"
	_, err = svc.Update(ctx, userID, seededID, ExerciseUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrExerciseAccessDenied)

	err = svc.Remove(ctx, userID, seededID)
	assert.ErrorIs(t, err, ErrExerciseAccessDenied)
}

func TestUpdateExercisePatchesOnlyGivenFields(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	ex, err := svc.Create(ctx, userID, "Rows", domain.CategoryBack, "Lats")
	require.NoError(t, err)

	newName := "Barbell Rows"
	updated, err := svc.Update(ctx, userID, ex.ID, ExerciseUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Barbell Rows", updated.Name)
	assert.Equal(t, domain.CategoryBack, updated.Category)
	assert.Equal(t, "Lats", updated.MuscleGroup)
}

func TestUpdateExerciseMissingIsAccessDenied(t *testing.T) {
	svc := NewExerciseService(newFakeExerciseRepo())

	newName := "Anything"
	_, err := svc.Update(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), ExerciseUpdate{Name: &newName})
	// Absent and not-owned are indistinguishable.
	assert.ErrorIs(t, err, ErrExerciseAccessDenied)
}

func TestRemoveExercise(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	ex, err := svc.Create(ctx, userID, "Shrugs", domain.CategoryShoulders, "Traps")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, userID, ex.ID))
	_, err = repo.GetByID(ctx, ex.ID)
	assert.Error(t, err)
}
