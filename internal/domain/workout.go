package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout represents a single dated training session owned by one user.
// Date is epoch milliseconds; the client decides how to bucket it into
// calendar days.
type Workout struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID  `bson:"userId" json:"userId"`
	Date      int64               `bson:"date" json:"date"`
	Notes     string              `bson:"notes,omitempty" json:"notes,omitempty"`
	Duration  *int                `bson:"duration,omitempty" json:"duration,omitempty"` // Minutes
	PresetID  *primitive.ObjectID `bson:"presetId,omitempty" json:"presetId,omitempty"` // Backlink to the preset it was started from, may dangle
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}
