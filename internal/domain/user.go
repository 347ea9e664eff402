package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system. Every workout, set and preset
// is scoped to exactly one user; exercises may additionally be global
// (seeded) and owned by nobody.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose via JSON
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
