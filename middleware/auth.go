package middleware

import (
	"net/http"
	"strings"

	userRepo "alcahub/database/repository/user"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware validates the bearer token and matches its hash
// against the user's stored session. Verified hashes are held in the auth
// cache so repeat requests skip the database until the session TTL lapses.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		computedHash := utils.HashToken(tokenString)

		// Cache hit: the hash was verified against the database earlier.
		if cache := utils.AuthCacheClient; cache != nil {
			cached, cacheErr := cache.Get(c.Request.Context(), utils.AuthCachePrefix+userID).Result()
			if cacheErr == nil && cached == computedHash {
				role, roleErr := utils.ExtractRoleFromToken(tokenString)
				if roleErr == nil {
					utils.CacheAuthSession(userID, computedHash)
					c.Set("userID", userID)
					c.Set("userRole", role)
					c.Next()
					return
				}
			}
			// Miss or stale entry: fall through to the database.
		}

		u, err := repo.GetByTokenHash(computedHash)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}
		utils.CacheAuthSession(u.ID, computedHash)

		c.Set("userID", u.ID)
		c.Set("userRole", u.Role)
		c.Next()
	}
}
