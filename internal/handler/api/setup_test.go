//go:build unit

package api_test

import (
	"net/http"

	"course-marketplace/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearer = "bearer-token"

// fakeAuth stands in for RequireAuth: any bearer token authenticates as the given principal.
func fakeAuth(p user.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", p.ID)
		c.Set("user_role", p.Role)
		c.Next()
	}
}

func newPrincipal(role user.Role) user.Principal {
	return user.NewPrincipal(uuid.New(), role)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
