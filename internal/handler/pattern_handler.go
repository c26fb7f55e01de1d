package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/zhar97/solar-om-analytics/internal/usecase"
)

// PatternHandler handles pattern list requests.
type PatternHandler struct {
	usecase *usecase.PatternUsecase
	logger  *slog.Logger
}

// NewPatternHandler creates a new pattern handler.
func NewPatternHandler(uc *usecase.PatternUsecase) *PatternHandler {
	return &PatternHandler{usecase: uc, logger: slog.Default()}
}

// List serves GET /api/patterns.
func (h *PatternHandler) List(ctx context.Context, c *app.RequestContext) {
	skip, limit, err := pageParams(c)
	if err != nil {
		patternFailure(c, err)
		return
	}

	minConfidence, err := minConfidenceParam(c)
	if err != nil {
		patternFailure(c, err)
		return
	}

	params := usecase.PatternListParams{
		PlantID:       c.Query("plant_id"),
		PatternType:   c.Query("pattern_type"),
		MinConfidence: minConfidence,
		SortBy:        c.DefaultQuery("sort_by", "confidence_pct"),
		SortOrder:     c.DefaultQuery("sort_order", "desc"),
		Skip:          skip,
		Limit:         limit,
	}

	patterns, total, err := h.usecase.List(ctx, params)
	if err != nil {
		h.logger.Warn("pattern list failed",
			"plant_id", params.PlantID,
			"error", err,
		)
		patternFailure(c, err)
		return
	}

	patternSuccess(c, patterns, total, skip, limit)
}
