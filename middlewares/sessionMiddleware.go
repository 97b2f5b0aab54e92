package middlewares

import (
	"context"
	"net/http"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/utils"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the caller from the token header: first as a
// redis session token, then as a signed API token. Requests without a token
// pass through for the @auth directive to reject.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("token")
		if token == "" {
			c.Next()
			return
		}
		username, exists, err := config.GetRedisValue("Token:" + token)
		if err == nil && exists {
			ctx := context.WithValue(c.Request.Context(), utils.ContextKeyToken, token)
			ctx = context.WithValue(ctx, utils.ContextKeyUsername, username)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		// API tokens are self-contained
		parsed, jwtErr := utils.JwtValidate(token)
		if jwtErr != nil || !parsed.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		claim, ok := parsed.Claims.(*utils.JwtCustomClaim)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		ctx := context.WithValue(c.Request.Context(), utils.ContextKeyToken, token)
		ctx = context.WithValue(ctx, utils.ContextKeyUserId, claim.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
