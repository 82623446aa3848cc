package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rohininagaraju/BlogApp/internal/users"
)

// ContextUserKey is where RequireAuth stores the resolved *users.User.
const ContextUserKey = "user"

// RequireAuth verifies the bearer token and resolves it to a live user
// before the downstream handler runs. A token for a user that no longer
// exists is treated the same as an invalid token.
func RequireAuth(store users.Store, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		userID, err := ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		u, err := store.ByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth, or nil when the
// request went through an unprotected route.
func CurrentUser(c *gin.Context) *users.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*users.User)
	return u
}
