package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request: method, matched route pattern (falling
// back to the raw path for unmatched requests), status, latency and client IP.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		log.Printf(
			"%s %s status=%d latency=%s ip=%s",
			c.Request.Method,
			route,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)
	}
}
