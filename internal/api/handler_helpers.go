package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID resolves the authenticated caller's ObjectID from the gin
// context. On failure it aborts the request and returns false.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return userID, true
}

// pathObjectID parses an ObjectID path parameter. On failure it aborts the
// request and returns false.
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}
