package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// requestLogger logs one line per request in place of gin's default logger.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(begin),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case len(c.Errors) > 0:
			entry.WithField("errors", c.Errors.String()).Warn("request rejected")
		default:
			entry.Debug("request served")
		}
	}
}
