package service

import (
	"context"
	"time"

	"fitlog/gym-tracker/internal/domain"
	"fitlog/gym-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mirror the mongo implementations' contract:
// generated ObjectIDs, timestamps on create, ErrNotFound on missing rows, and
// the documented orderings (GetByUserID newest first, sets in insertion order).

// --- users ---

type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := u
	return &cp, nil
}

// --- exercises ---

type fakeExerciseRepo struct {
	items map[primitive.ObjectID]domain.Exercise
	order []primitive.ObjectID
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{items: make(map[primitive.ObjectID]domain.Exercise)}
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()
	now := time.Now()
	exercise.CreatedAt, exercise.UpdatedAt = now, now
	r.items[exercise.ID] = *exercise
	r.order = append(r.order, exercise.ID)
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	ex, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := ex
	return &cp, nil
}

func (r *fakeExerciseRepo) GetAll(_ context.Context) ([]domain.Exercise, error) {
	all := make([]domain.Exercise, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.items[id])
	}
	return all, nil
}

func (r *fakeExerciseRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, ex := range r.items {
		if ex.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.items[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *exercise
	cp.UpdatedAt = time.Now()
	r.items[exercise.ID] = cp
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// --- workouts ---

type fakeWorkoutRepo struct {
	items map[primitive.ObjectID]domain.Workout
	order []primitive.ObjectID
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{items: make(map[primitive.ObjectID]domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	now := time.Now()
	workout.CreatedAt, workout.UpdatedAt = now, now
	r.items[workout.ID] = *workout
	r.order = append(r.order, workout.ID)
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := w
	return &cp, nil
}

func (r *fakeWorkoutRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	// Newest first, matching the mongo sort on createdAt descending.
	workouts := make([]domain.Workout, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		w := r.items[r.order[i]]
		if w.UserID == userID {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	if _, ok := r.items[workout.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *workout
	cp.UpdatedAt = time.Now()
	r.items[workout.ID] = cp
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// --- sets ---

type fakeSetRepo struct {
	items map[primitive.ObjectID]domain.Set
	order []primitive.ObjectID
}

func newFakeSetRepo() *fakeSetRepo {
	return &fakeSetRepo{items: make(map[primitive.ObjectID]domain.Set)}
}

func (r *fakeSetRepo) Create(_ context.Context, set *domain.Set) (primitive.ObjectID, error) {
	set.ID = primitive.NewObjectID()
	set.CreatedAt = time.Now()
	r.items[set.ID] = *set
	r.order = append(r.order, set.ID)
	return set.ID, nil
}

func (r *fakeSetRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Set, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := s
	return &cp, nil
}

func (r *fakeSetRepo) GetByWorkoutID(_ context.Context, workoutID primitive.ObjectID) ([]domain.Set, error) {
	sets := make([]domain.Set, 0)
	for _, id := range r.order {
		if s := r.items[id]; s.WorkoutID == workoutID {
			sets = append(sets, s)
		}
	}
	return sets, nil
}

func (r *fakeSetRepo) GetByExerciseID(_ context.Context, exerciseID primitive.ObjectID) ([]domain.Set, error) {
	sets := make([]domain.Set, 0)
	for _, id := range r.order {
		if s := r.items[id]; s.ExerciseID == exerciseID {
			sets = append(sets, s)
		}
	}
	return sets, nil
}

func (r *fakeSetRepo) Update(_ context.Context, set *domain.Set) error {
	if _, ok := r.items[set.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[set.ID] = *set
	return nil
}

func (r *fakeSetRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeSetRepo) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	sets, _ := r.GetByWorkoutID(ctx, workoutID)
	for _, s := range sets {
		if err := r.Delete(ctx, s.ID); err != nil {
			return err
		}
	}
	return nil
}

// --- presets ---

type fakePresetRepo struct {
	items map[primitive.ObjectID]domain.WorkoutPreset
	order []primitive.ObjectID
}

func newFakePresetRepo() *fakePresetRepo {
	return &fakePresetRepo{items: make(map[primitive.ObjectID]domain.WorkoutPreset)}
}

func (r *fakePresetRepo) Create(_ context.Context, preset *domain.WorkoutPreset) (primitive.ObjectID, error) {
	preset.ID = primitive.NewObjectID()
	now := time.Now()
	preset.CreatedAt, preset.UpdatedAt = now, now
	r.items[preset.ID] = *preset
	r.order = append(r.order, preset.ID)
	return preset.ID, nil
}

func (r *fakePresetRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutPreset, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *fakePresetRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.WorkoutPreset, error) {
	presets := make([]domain.WorkoutPreset, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.items[r.order[i]]
		if p.UserID == userID {
			presets = append(presets, p)
		}
	}
	return presets, nil
}

func (r *fakePresetRepo) Update(_ context.Context, preset *domain.WorkoutPreset) error {
	if _, ok := r.items[preset.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *preset
	cp.UpdatedAt = time.Now()
	r.items[preset.ID] = cp
	return nil
}

func (r *fakePresetRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
