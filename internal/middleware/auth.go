package middleware

import (
	"strings"
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin routes. The token is taken from the
// Authorization header or, as a fallback, the token query parameter.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("admin", claims)
		c.Next()
	}
}
