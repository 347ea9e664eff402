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

const presetCollectionName = "workout_presets"

// mongoPresetRepository implements repository.PresetRepository
type mongoPresetRepository struct {
	collection *mongo.Collection
}

// NewMongoPresetRepository creates a new Preset repository backed by MongoDB.
func NewMongoPresetRepository(db *mongo.Database) repository.PresetRepository {
	return &mongoPresetRepository{
		collection: db.Collection(presetCollectionName),
	}
}

// Create inserts a new workout preset.
func (r *mongoPresetRepository) Create(ctx context.Context, preset *domain.WorkoutPreset) (primitive.ObjectID, error) {
	if preset.UserID == primitive.NilObjectID || preset.Name == "" {
		return primitive.NilObjectID, errors.New("preset requires userId and name")
	}

	preset.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	preset.CreatedAt = now
	preset.UpdatedAt = now
	if preset.Exercises == nil {
		preset.Exercises = []domain.PresetExercise{}
	}

	result, err := r.collection.InsertOne(ctx, preset)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted preset ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single preset by its ID.
func (r *mongoPresetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPreset, error) {
	var preset domain.WorkoutPreset
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&preset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &preset, nil
}

// GetByUserID retrieves all presets of one user, most recently created first.
func (r *mongoPresetRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPreset, error) {
	var presets []domain.WorkoutPreset
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &presets); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return presets, nil
}

// Update replaces name, notes and the full exercises array of a preset.
// The exercises array is always a full replace, never a merge.
func (r *mongoPresetRepository) Update(ctx context.Context, preset *domain.WorkoutPreset) error {
	if preset.ID == primitive.NilObjectID {
		return errors.New("preset ID is required for update")
	}
	if preset.Name == "" {
		return errors.New("preset name cannot be empty")
	}

	filter := bson.M{"_id": preset.ID}
	update := bson.M{
		"$set": bson.M{
			"name":      preset.Name,
			"notes":     preset.Notes,
			"exercises": preset.Exercises,
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

// Delete removes a preset. Workouts created from it keep their (now dangling)
// presetId backlink; that is tolerated at read time.
func (r *mongoPresetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePresetIndexes creates necessary indexes for the workout_presets collection.
func EnsurePresetIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; see EnsureUserIndexes.
	}
}
