package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cocosip/go-huffman-codec/internal/logger"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id (taken from the client when
// present) and logs one line when it completes.
func RequestLogger(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status >= 500 {
			l.Errorf("%s %s %s -> %d (%s)", id, c.Request.Method, c.Request.URL.Path, status, time.Since(start))
			return
		}
		l.Infof("%s %s %s -> %d (%s)", id, c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}
