package mongo

import (
	"context"
	"errors"
	"time"

	"fitlog/gym-tracker/internal/domain"
	"fitlog/gym-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const setCollectionName = "sets"

// mongoSetRepository implements repository.SetRepository
type mongoSetRepository struct {
	collection *mongo.Collection
}

// NewMongoSetRepository creates a new Set repository backed by MongoDB.
func NewMongoSetRepository(db *mongo.Database) repository.SetRepository {
	return &mongoSetRepository{
		collection: db.Collection(setCollectionName),
	}
}

// Create inserts a new logged set.
func (r *mongoSetRepository) Create(ctx context.Context, set *domain.Set) (primitive.ObjectID, error) {
	if set.WorkoutID == primitive.NilObjectID || set.ExerciseID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("set requires workoutId and exerciseId")
	}
	if set.SetNumber < 1 {
		return primitive.NilObjectID, errors.New("set number must be 1 or greater")
	}

	set.ID = primitive.NewObjectID()
	set.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, set)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted set ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single set by its ID.
func (r *mongoSetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Set, error) {
	var set domain.Set
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &set, nil
}

// GetByWorkoutID retrieves the sets of a workout in insertion order.
// Preset derivation relies on this order, not on setNumber.
func (r *mongoSetRepository) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.Set, error) {
	return r.find(ctx, bson.M{"workoutId": workoutID})
}

// GetByExerciseID retrieves every stored set of one exercise.
func (r *mongoSetRepository) GetByExerciseID(ctx context.Context, exerciseID primitive.ObjectID) ([]domain.Set, error) {
	return r.find(ctx, bson.M{"exerciseId": exerciseID})
}

func (r *mongoSetRepository) find(ctx context.Context, filter bson.M) ([]domain.Set, error) {
	var sets []domain.Set
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sets); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return sets, nil
}

// Update patches reps, weight and rest time of a set in place.
// WorkoutID, ExerciseID and SetNumber are fixed after creation.
func (r *mongoSetRepository) Update(ctx context.Context, set *domain.Set) error {
	if set.ID == primitive.NilObjectID {
		return errors.New("set ID is required for update")
	}

	filter := bson.M{"_id": set.ID}
	update := bson.M{
		"$set": bson.M{
			"reps":     set.Reps,
			"weight":   set.Weight,
			"restTime": set.RestTime,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a single set.
func (r *mongoSetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByWorkoutID removes every set referencing the workout. Deleting zero
// documents is fine here: an empty workout has nothing to cascade.
func (r *mongoSetRepository) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"workoutId": workoutID})
	return err
}

// EnsureSetIndexes creates necessary indexes for the sets collection.
func EnsureSetIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "exerciseId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; see EnsureUserIndexes.
	}
}
