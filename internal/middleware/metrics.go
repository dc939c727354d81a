package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ifsi-gestion/ifsi-api/internal/service"
)

// Metrics records per-request duration and status for Prometheus.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
