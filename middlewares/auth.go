package middlewares

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/pkg/resp"
	"github.com/vai-sys/DigitalDinner/repository"
	"github.com/vai-sys/DigitalDinner/utils"
)

// AuthMiddleware validates the bearer token and resolves it to a live user
// row; a token for a since-deleted user is rejected. Pass required roles to
// additionally gate the route.
func AuthMiddleware(users *repository.UserRepository, secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "Not authorized to access this route")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "Not authorized to access this route")
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Unauthorized(c, "User no longer exists")
			c.Abort()
			return
		}
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("role", user.Role)
		c.Set("user", user)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
