package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP extracts the caller's IP, preferring the X-Forwarded-For header
// set by the fronting proxy.
func getClientIP(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
