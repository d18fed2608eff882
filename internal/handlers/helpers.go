package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studysimplifier/internal/middleware"
	"studysimplifier/internal/models"
	"studysimplifier/internal/services"
)

// getUserID reads the authenticated user id the auth middleware stored in
// the context.
func getUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return primitive.NilObjectID, false
	}
	s, ok := v.(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// currentUser loads the authenticated user and writes the error response
// itself when that fails.
func currentUser(c *gin.Context, users services.UserService) (*models.User, bool) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Kein Token, Zugriff verweigert"})
		return nil, false
	}
	user, err := users.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return nil, false
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Benutzer nicht gefunden"})
		return nil, false
	}
	return user, true
}
