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

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the catalog.
// UserID may be nil: seeded exercises are global and owned by nobody.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" || !exercise.Category.IsValid() {
		return primitive.NilObjectID, errors.New("exercise name and a valid category are required")
	}

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves an exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// GetAll retrieves the whole exercise catalog, seeded and custom alike.
func (r *mongoExerciseRepository) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	var exercises []domain.Exercise

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

// ExistsByName reports whether any exercise with exactly this name exists.
func (r *mongoExerciseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"name": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update modifies an existing exercise. The owner (userId) is never changed
// through this path.
func (r *mongoExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.ID == primitive.NilObjectID {
		return errors.New("exercise ID is required for update")
	}
	if exercise.Name == "" || !exercise.Category.IsValid() {
		return errors.New("exercise name and a valid category are required")
	}

	filter := bson.M{"_id": exercise.ID}
	update := bson.M{
		"$set": bson.M{
			"name":        exercise.Name,
			"category":    exercise.Category,
			"muscleGroup": exercise.MuscleGroup,
			"updatedAt":   time.Now().UTC(),
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

// Delete removes an exercise by ID. Ownership is enforced by the service layer.
func (r *mongoExerciseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
		{
			// Seeding checks names one by one; keep those lookups cheap.
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; see EnsureUserIndexes.
	}
}
