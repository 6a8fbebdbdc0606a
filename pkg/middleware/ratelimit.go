package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	mem "serenity/pkg/memcache"
	"serenity/pkg/utils"
)

// AuthRateLimitMiddleware bounds signup/login attempts per client origin.
// Rejected requests never reach the identity store.
func AuthRateLimitMiddleware(store mem.AttemptStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Allow(c.ClientIP()) {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many attempts, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
