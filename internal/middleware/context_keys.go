package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID stored by the
// auth middleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id, true
		}
	}
	return "", false
}

// GetActorFromContext builds the acting user's identity from the request
// context. The second return is false when the request is unauthenticated.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	role, _ := c.Request.Context().Value(userRoleKey).(string)
	return domain.Actor{UserID: userID, Role: domain.UserRole(role)}, true
}

// withActor stores the authenticated identity in the request context.
func withActor(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}
