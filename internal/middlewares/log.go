package middlewares

import (
	"log/slog"
	"time"

	"github.com/dchest/uniuri"
	"github.com/gin-gonic/gin"
)

const RequestIdKey = "request-id"

// LogMiddleware tags every request with a short random ID and logs it on
// the way in and out.
func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uniuri.NewLen(8)
		c.Set(RequestIdKey, id)

		slog.Info("Handling request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		slog.Info("Finish handling request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"time", elapsed,
		)
	}
}
