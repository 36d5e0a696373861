package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GalleryCORS lets any origin read the public gallery. Preflight requests
// are answered here and never reach the handler.
func GalleryCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"ok": true})
			return
		}

		c.Next()
	}
}

// NoStore keeps gallery responses out of shared caches; an expired link
// must stop working as soon as the order is archived.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
