// Package authorization holds the request-scoped identity helpers shared by
// the HTTP layer. The auth middleware populates the context keys; handlers
// and route guards read them.
package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clientsolve/internal/shared/utils"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "role"
	ContextKeyClientID = "client_id"

	RoleAdmin  = "admin"
	RoleClient = "client"
)

// RequireAdmin aborts the request unless the authenticated user is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func IsAdmin(c *gin.Context) bool {
	return c.GetString(ContextKeyUserRole) == RoleAdmin
}

func UserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

func Role(c *gin.Context) string {
	return c.GetString(ContextKeyUserRole)
}

// ClientID returns the client scope of the authenticated user. Empty for
// admins.
func ClientID(c *gin.Context) string {
	return c.GetString(ContextKeyClientID)
}
