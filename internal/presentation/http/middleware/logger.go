package middleware

import (
	"log"
	"time"

	"github.com/daniiloleshchuk/checkbox-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request with a generated request id.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = utils.NewRequestID()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		log.Printf("[%s] %s %s %d %v",
			requestID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
