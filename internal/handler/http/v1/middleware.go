package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/campus_safety/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// RequestLogger пишет одну запись на запрос
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		})
		if c.Writer.Status() >= 500 {
			entry.Error("Request failed")
			return
		}
		entry.Debug("Request handled")
	}
}

// Metrics - middleware для гистограммы длительности HTTP-запросов.
// Маршрут берется из шаблона, чтобы id не плодили метки.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
