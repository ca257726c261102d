package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifementor/backend/internal/logger"
)

// RequestLogger attaches a request ID to the context and logs each
// request with latency and status
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-ID"))
		c.Request = c.Request.WithContext(ctx)
		c.Set("request_id", logger.RequestIDFromContext(ctx))

		c.Next()

		logger.Ctx(ctx).Info("request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}
