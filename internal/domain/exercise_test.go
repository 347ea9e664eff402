package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsValid(), "category %q", c)
	}
	assert.False(t, Category("Cardio").IsValid())
	assert.False(t, Category("chest").IsValid(), "categories are case sensitive")
	assert.False(t, Category("").IsValid())
}

func TestExerciseOwnedBy(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	custom := Exercise{Name: "Cable Fly", Category: CategoryChest, UserID: &owner}
	assert.True(t, custom.OwnedBy(owner))
	assert.False(t, custom.OwnedBy(stranger))

	seeded := Exercise{Name: "Push-ups", Category: CategoryChest}
	assert.False(t, seeded.OwnedBy(owner), "seeded exercises belong to nobody")
}
