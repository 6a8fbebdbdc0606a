package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"serenity/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrForbidden) {
				utils.RespondError(c, http.StatusForbidden, "Token signature verification failed")
			} else {
				utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			}
			c.Abort()
			return
		}

		// Pass account identity to the next handler
		c.Set("account_id", claims.AccountID)
		c.Set("account_email", claims.Email)
		c.Set("account_type", claims.AccountType)
		c.Next()
	}
}
