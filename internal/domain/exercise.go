package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the closed set of body-part categories an exercise belongs to.
type Category string

const (
	CategoryChest     Category = "Chest"
	CategoryBack      Category = "Back"
	CategoryLegs      Category = "Legs"
	CategoryShoulders Category = "Shoulders"
	CategoryArms      Category = "Arms"
	CategoryCore      Category = "Core"
)

// Categories lists every recognized category, in display order.
func Categories() []Category {
	return []Category{
		CategoryChest,
		CategoryBack,
		CategoryLegs,
		CategoryShoulders,
		CategoryArms,
		CategoryCore,
	}
}

// IsValid reports whether c is one of the six recognized categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryChest, CategoryBack, CategoryLegs, CategoryShoulders, CategoryArms, CategoryCore:
		return true
	}
	return false
}

// Exercise represents a named movement in the catalog.
// UserID is nil for seeded/global exercises; those are visible to everyone
// and can never be updated or removed through the user-facing paths.
type Exercise struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Category    Category            `bson:"category" json:"category"`
	MuscleGroup string              `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"` // e.g. "Pectorals", "Quadriceps"
	UserID      *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// OwnedBy reports whether the exercise is a custom exercise owned by userID.
// Seeded exercises (no owner) belong to nobody.
func (e *Exercise) OwnedBy(userID primitive.ObjectID) bool {
	return e.UserID != nil && *e.UserID == userID
}
