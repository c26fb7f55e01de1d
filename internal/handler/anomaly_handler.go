package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/zhar97/solar-om-analytics/internal/usecase"
)

// AnomalyHandler handles anomaly list requests.
type AnomalyHandler struct {
	usecase *usecase.AnomalyUsecase
	logger  *slog.Logger
}

// NewAnomalyHandler creates a new anomaly handler.
func NewAnomalyHandler(uc *usecase.AnomalyUsecase) *AnomalyHandler {
	return &AnomalyHandler{usecase: uc, logger: slog.Default()}
}

// List serves GET /api/anomalies.
func (h *AnomalyHandler) List(ctx context.Context, c *app.RequestContext) {
	h.list(ctx, c, "")
}

// ListByPlant serves GET /api/anomalies/:plant_id.
func (h *AnomalyHandler) ListByPlant(ctx context.Context, c *app.RequestContext) {
	h.list(ctx, c, c.Param("plant_id"))
}

func (h *AnomalyHandler) list(ctx context.Context, c *app.RequestContext, plantID string) {
	skip, limit, err := pageParams(c)
	if err != nil {
		anomalyFailure(c, err)
		return
	}

	params := usecase.AnomalyListParams{
		PlantID:  plantID,
		Metric:   c.Query("metric"),
		Severity: c.Query("severity"),
		Sort:     c.DefaultQuery("sort", "date"),
		Order:    c.DefaultQuery("order", "desc"),
		Skip:     skip,
		Limit:    limit,
	}

	anomalies, total, err := h.usecase.List(ctx, params)
	if err != nil {
		h.logger.Warn("anomaly list failed",
			"plant_id", plantID,
			"error", err,
		)
		anomalyFailure(c, err)
		return
	}

	anomalySuccess(c, anomalies, total)
}
