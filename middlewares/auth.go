package middlewares

import (
	"net/http"
	"strings"

	"littlelemon/auth"
	"littlelemon/repository"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and resolves the caller into an
// auth.Actor once per request: the token carries only the user id, the
// staff flag and group memberships are loaded fresh so that group changes
// take effect immediately.
func AuthMiddleware(userRepo *repository.UserRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		user, err := userRepo.FindWithGroups(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unknown user"})
			c.Abort()
			return
		}

		utils.SetActor(c, auth.NewActor(user))
		c.Next()
	}
}
