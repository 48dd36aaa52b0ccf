package middleware

import (
	"net/http"
	"strings"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	userRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/user"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware chain.
const (
	CtxUser = "currentUser"
	CtxShop = "currentShop"
)

// JWTAuthMiddleware validates the bearer token and resolves the account by
// its stored token hash, so signing out (clearing the hash) revokes tokens
// that are otherwise still within their lifetime.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		account, err := users.GetByTokenHash(utils.HashToken(tokenString))
		if err != nil || account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}
		if !account.Enabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This account has been disabled"})
			return
		}

		c.Set(CtxUser, account)
		c.Next()
	}
}
