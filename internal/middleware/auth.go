package middleware

import (
	"net/http"
	"strings"

	"SiteExer/internal/pkg"
	"SiteExer/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// AuthMiddleware resolves the request identity from a Bearer access token,
// double-checked against the Redis copy so a newer login invalidates older
// sessions. Anonymous callers get 401 plus the login route to redirect to.
func AuthMiddleware() gin.HandlerFunc {
	tokens := &redis.TokenRepository{}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "login required", "redirect": pkg.LoginPath()})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format", "redirect": pkg.LoginPath()})
			return
		}

		claims, err := pkg.ParseAccess(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token", "redirect": pkg.LoginPath()})
			return
		}

		stored, err := tokens.GetUserToken(c.Request.Context(), claims.UserID)
		if err != nil || stored != parts[1] {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "account has been logged in elsewhere", "redirect": pkg.LoginPath()})
			return
		}

		// Sliding expiry: a validated request keeps the session alive.
		if err = tokens.ExtendUserToken(c.Request.Context(), claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
