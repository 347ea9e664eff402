package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PresetSet is a template set inside a preset. Unlike a logged Set it
// carries no workout reference and no set number; ordering is the array
// order it was stored with.
type PresetSet struct {
	Reps     int     `bson:"reps" json:"reps"`
	Weight   float64 `bson:"weight" json:"weight"`
	RestTime *int    `bson:"restTime,omitempty" json:"restTime,omitempty"`
}

// PresetExercise groups the template sets for one exercise within a preset.
type PresetExercise struct {
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Sets       []PresetSet        `bson:"sets" json:"sets"`
}

// WorkoutPreset is a reusable, named template of exercises and target sets.
// It snapshots values at creation time and never references the workout or
// set records it may have been derived from.
type WorkoutPreset struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Exercises []PresetExercise   `bson:"exercises" json:"exercises"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
