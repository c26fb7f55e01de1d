package middleware

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/zhar97/solar-om-analytics/internal/metrics"
)

// Metrics records request counts and latency. The route template is
// used as the path label so /api/anomalies/:plant_id stays one series.
func Metrics() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()

		c.Next(ctx)

		path := c.FullPath()
		if path == "" {
			path = string(c.Path())
		}
		metrics.RecordRequest(string(c.Method()), path, c.Response.StatusCode(), time.Since(start))
	}
}
