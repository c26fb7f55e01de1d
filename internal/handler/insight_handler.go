package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/zhar97/solar-om-analytics/internal/usecase"
)

// InsightHandler handles insight list requests.
type InsightHandler struct {
	usecase *usecase.InsightUsecase
	logger  *slog.Logger
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(uc *usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{usecase: uc, logger: slog.Default()}
}

// List serves GET /api/insights.
func (h *InsightHandler) List(ctx context.Context, c *app.RequestContext) {
	skip, limit, err := pageParams(c)
	if err != nil {
		insightFailure(c, err)
		return
	}

	minConfidence, err := minConfidenceParam(c)
	if err != nil {
		insightFailure(c, err)
		return
	}

	params := usecase.InsightListParams{
		PlantID:       c.Query("plant_id"),
		InsightType:   c.Query("insight_type"),
		Urgency:       c.Query("urgency"),
		MinConfidence: minConfidence,
		SortBy:        c.DefaultQuery("sort_by", "confidence"),
		SortOrder:     c.DefaultQuery("sort_order", "desc"),
		Skip:          skip,
		Limit:         limit,
	}

	insights, total, err := h.usecase.List(ctx, params)
	if err != nil {
		h.logger.Warn("insight list failed",
			"plant_id", params.PlantID,
			"error", err,
		)
		insightFailure(c, err)
		return
	}

	insightSuccess(c, insights, total, skip, limit)
}
