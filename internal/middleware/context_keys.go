package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

const (
	userIDKey = contextKey("userID")
	userKey   = contextKey("user")
)

// withUser stores the authenticated user in the request context.
func withUser(ctx context.Context, user *domain.User) context.Context {
	ctx = context.WithValue(ctx, userIDKey, user.UserID)
	return context.WithValue(ctx, userKey, user)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserFromContext retrieves the authenticated user loaded by the auth middleware.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(userKey).(*domain.User)
	return user, ok && user != nil
}
