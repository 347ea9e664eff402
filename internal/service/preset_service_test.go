package service

import (
	"context"
	"testing"

	"fitlog/gym-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type presetFixture struct {
	*workoutFixture
	svc PresetService
}

func newPresetFixture() *presetFixture {
	wf := newWorkoutFixture()
	return &presetFixture{
		workoutFixture: wf,
		svc:            NewPresetService(wf.presetRepo, wf.workoutRepo, wf.setRepo, wf.exerciseRepo),
	}
}

func TestCreatePresetRequiresName(t *testing.T) {
	f := newPresetFixture()

	_, err := f.svc.Create(context.Background(), f.userID, "", "", nil)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCreateAndGetPreset(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	bench := f.mustCreateExercise(t, "Bench Press")
	exercises := []domain.PresetExercise{
		{ExerciseID: bench.ID, Sets: []domain.PresetSet{{Reps: 10, Weight: 60}}},
	}

	preset, err := f.svc.Create(ctx, f.userID, "Push Day", "start light", exercises)
	require.NoError(t, err)
	assert.Equal(t, "Push Day", preset.Name)

	detail, err := f.svc.Get(ctx, f.userID, preset.ID)
	require.NoError(t, err)
	assert.Equal(t, "start light", detail.Notes)
	require.Len(t, detail.ExerciseDetails, 1)
	assert.Equal(t, "Bench Press", detail.ExerciseDetails[0].Name)
}

func TestGetPresetDropsDanglingExerciseRefs(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	bench := f.mustCreateExercise(t, "Bench Press")
	preset, err := f.svc.Create(ctx, f.userID, "Push Day", "", []domain.PresetExercise{
		{ExerciseID: bench.ID, Sets: []domain.PresetSet{{Reps: 10, Weight: 60}}},
	})
	require.NoError(t, err)

	require.NoError(t, f.exerciseRepo.Delete(ctx, bench.ID))

	detail, err := f.svc.Get(ctx, f.userID, preset.ID)
	require.NoError(t, err)
	// The stored template keeps the reference, the resolved view drops it.
	assert.Len(t, detail.Exercises, 1)
	assert.Empty(t, detail.ExerciseDetails)
}

func TestGetPresetForeignIsNotFound(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	preset, err := f.svc.Create(ctx, f.userID, "Push Day", "", nil)
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, primitive.NewObjectID(), preset.ID)
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestCreateFromWorkoutGroupsSetsByExercise(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	bench := f.mustCreateExercise(t, "Bench Press")
	squat := f.mustCreateExercise(t, "Squat")
	w, err := f.workoutFixture.svc.Create(ctx, f.userID, 100, "leg day notes", nil, nil)
	require.NoError(t, err)

	rest := 120
	_, err = f.workoutFixture.svc.CreateSet(ctx, f.userID, w.ID, SetInput{ExerciseID: bench.ID, SetNumber: 1, Reps: 10, Weight: 60, RestTime: &rest})
	require.NoError(t, err)
	f.mustCreateSet(t, w.ID, squat.ID, 1, 5, 100)
	f.mustCreateSet(t, w.ID, bench.ID, 2, 8, 70)

	preset, err := f.svc.CreateFromWorkout(ctx, f.userID, w.ID, "Derived")
	require.NoError(t, err)

	assert.Equal(t, "Derived", preset.Name)
	// Notes default to the workout's notes.
	assert.Equal(t, "leg day notes", preset.Notes)

	// Groups appear in first-seen order even when an exercise's sets are
	// interleaved with another's.
	require.Len(t, preset.Exercises, 2)
	assert.Equal(t, bench.ID, preset.Exercises[0].ExerciseID)
	assert.Equal(t, squat.ID, preset.Exercises[1].ExerciseID)

	benchSets := preset.Exercises[0].Sets
	require.Len(t, benchSets, 2)
	assert.Equal(t, 10, benchSets[0].Reps)
	assert.Equal(t, 60.0, benchSets[0].Weight)
	require.NotNil(t, benchSets[0].RestTime)
	assert.Equal(t, 120, *benchSets[0].RestTime)
	assert.Equal(t, 8, benchSets[1].Reps)

	require.Len(t, preset.Exercises[1].Sets, 1)
}

func TestCreateFromWorkoutRequiresName(t *testing.T) {
	f := newPresetFixture()
	w := f.mustCreateWorkout(t, 100)

	_, err := f.svc.CreateFromWorkout(context.Background(), f.userID, w.ID, "")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCreateFromWorkoutForeignIsNotFound(t *testing.T) {
	f := newPresetFixture()
	w := f.mustCreateWorkout(t, 100)

	_, err := f.svc.CreateFromWorkout(context.Background(), primitive.NewObjectID(), w.ID, "Stolen")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestUpdatePresetReplacesExercisesWholesale(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	bench := f.mustCreateExercise(t, "Bench Press")
	squat := f.mustCreateExercise(t, "Squat")
	preset, err := f.svc.Create(ctx, f.userID, "Push Day", "", []domain.PresetExercise{
		{ExerciseID: bench.ID, Sets: []domain.PresetSet{{Reps: 10, Weight: 60}}},
	})
	require.NoError(t, err)

	replacement := []domain.PresetExercise{
		{ExerciseID: squat.ID, Sets: []domain.PresetSet{{Reps: 5, Weight: 100}}},
	}
	updated, err := f.svc.Update(ctx, f.userID, preset.ID, PresetUpdate{Exercises: replacement})
	require.NoError(t, err)
	require.Len(t, updated.Exercises, 1)
	assert.Equal(t, squat.ID, updated.Exercises[0].ExerciseID)
	assert.Equal(t, "Push Day", updated.Name)
}

func TestUpdatePresetRejectsEmptyName(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	preset, err := f.svc.Create(ctx, f.userID, "Push Day", "", nil)
	require.NoError(t, err)

	empty := ""
	_, err = f.svc.Update(ctx, f.userID, preset.ID, PresetUpdate{Name: &empty})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestUpdateFromWorkoutOverwritesExercisesOnly(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	bench := f.mustCreateExercise(t, "Bench Press")
	squat := f.mustCreateExercise(t, "Squat")
	preset, err := f.svc.Create(ctx, f.userID, "Push Day", "keep these notes", []domain.PresetExercise{
		{ExerciseID: bench.ID, Sets: []domain.PresetSet{{Reps: 10, Weight: 60}}},
	})
	require.NoError(t, err)

	w := f.mustCreateWorkout(t, 100)
	f.mustCreateSet(t, w.ID, squat.ID, 1, 5, 110)

	updated, err := f.svc.UpdateFromWorkout(ctx, f.userID, preset.ID, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push Day", updated.Name)
	assert.Equal(t, "keep these notes", updated.Notes)
	require.Len(t, updated.Exercises, 1)
	assert.Equal(t, squat.ID, updated.Exercises[0].ExerciseID)
	assert.Equal(t, 110.0, updated.Exercises[0].Sets[0].Weight)
}

func TestPresetWorkoutRoundTrip(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	bench := f.mustCreateExercise(t, "Bench Press")
	squat := f.mustCreateExercise(t, "Squat")
	preset, err := f.svc.Create(ctx, f.userID, "Push Day", "", []domain.PresetExercise{
		{ExerciseID: bench.ID, Sets: []domain.PresetSet{{Reps: 10, Weight: 60}, {Reps: 8, Weight: 70}}},
		{ExerciseID: squat.ID, Sets: []domain.PresetSet{{Reps: 5, Weight: 100}}},
	})
	require.NoError(t, err)

	// Expand the preset into a workout, then derive a preset back from that
	// workout: the template should survive the round trip.
	workout, err := f.workoutFixture.svc.StartFromPreset(ctx, f.userID, preset.ID, 500, "")
	require.NoError(t, err)

	derived, err := f.svc.CreateFromWorkout(ctx, f.userID, workout.ID, "Round Trip")
	require.NoError(t, err)
	assert.Equal(t, preset.Exercises, derived.Exercises)
}

func TestRemovePresetKeepsWorkoutBacklink(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	preset, err := f.svc.Create(ctx, f.userID, "Push Day", "", nil)
	require.NoError(t, err)
	workout, err := f.workoutFixture.svc.StartFromPreset(ctx, f.userID, preset.ID, 100, "")
	require.NoError(t, err)

	require.NoError(t, f.svc.Remove(ctx, f.userID, preset.ID))

	// The workout still points at the deleted preset; readers tolerate it.
	stored, err := f.workoutRepo.GetByID(ctx, workout.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PresetID)
	assert.Equal(t, preset.ID, *stored.PresetID)
}

func TestListPresetsNewestFirstAndScoped(t *testing.T) {
	f := newPresetFixture()
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.userID, "First", "", nil)
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, f.userID, "Second", "", nil)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, primitive.NewObjectID(), "Other User", "", nil)
	require.NoError(t, err)

	presets, err := f.svc.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, second.ID, presets[0].ID)
	assert.Equal(t, first.ID, presets[1].ID)
}
