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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository backed by MongoDB.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout requires a userId")
	}

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetByUserID retrieves all workouts of one user, newest first.
func (r *mongoWorkoutRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	var workouts []domain.Workout
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

// Update patches the mutable fields of a workout (date, notes, duration).
// UserID and PresetID are never changed through this path.
func (r *mongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == primitive.NilObjectID {
		return errors.New("workout ID is required for update")
	}

	filter := bson.M{"_id": workout.ID}
	update := bson.M{
		"$set": bson.M{
			"date":      workout.Date,
			"notes":     workout.Notes,
			"duration":  workout.Duration,
			"updatedAt": time.Now().UTC(),
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

// Delete removes a workout record. The set cascade happens in the service
// layer, before this call.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes for the workouts collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; see EnsureUserIndexes.
	}
}
