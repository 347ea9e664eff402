package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Set is one logged performance of an exercise within a workout.
// SetNumber is 1-based and sequential within its exercise-within-workout
// group; keeping it contiguous after deletions is the client's job.
type Set struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID  primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	SetNumber  int                `bson:"setNumber" json:"setNumber"`
	Reps       int                `bson:"reps" json:"reps"`
	Weight     float64            `bson:"weight" json:"weight"`
	RestTime   *int               `bson:"restTime,omitempty" json:"restTime,omitempty"` // Seconds
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
