package handler

import (
	"errors"
	"net/http"

	"SiteExer/internal/middleware"
	"SiteExer/internal/pkg"

	"github.com/gin-gonic/gin"
)

// userIDFromCtx returns the identity the auth middleware stored. A missing
// or mistyped value means the route is wired without the middleware; the
// request is rejected instead of running as a made-up user.
func userIDFromCtx(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "login required", "redirect": pkg.LoginPath()})
		return 0, false
	}
	id, ok := v.(uint64)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "login required", "redirect": pkg.LoginPath()})
		return 0, false
	}
	return id, true
}

// writeWarning acknowledges a rejected-but-recoverable action: the caller
// gets the message and a view to return to, never an error status.
func writeWarning(c *gin.Context, msg, redirect string) {
	c.JSON(http.StatusOK, gin.H{"msg": msg, "redirect": redirect})
}

func writeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
}

// writeValidationError redisplays the form: field errors inline when the
// failure names a field, a plain message otherwise.
func writeValidationError(c *gin.Context, err error) {
	var fe *pkg.FieldError
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{fe.Field: fe.Reason}})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
}
