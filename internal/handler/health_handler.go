package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	"github.com/zhar97/solar-om-analytics/internal/dataset"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	store *dataset.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store *dataset.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Ping is the basic health check.
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Liveness reports whether the process is running.
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}

// Readiness reports whether the dataset has been loaded and the server
// can answer queries.
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if !h.store.Loaded() {
		c.JSON(503, utils.H{
			"status":  "not_ready",
			"dataset": "not_loaded",
		})
		return
	}

	c.JSON(200, utils.H{
		"status":  "ready",
		"dataset": "loaded",
	})
}
