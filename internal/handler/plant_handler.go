package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/zhar97/solar-om-analytics/internal/usecase"
)

// PlantHandler handles plant list requests.
type PlantHandler struct {
	usecase *usecase.PlantUsecase
	logger  *slog.Logger
}

// NewPlantHandler creates a new plant handler.
func NewPlantHandler(uc *usecase.PlantUsecase) *PlantHandler {
	return &PlantHandler{usecase: uc, logger: slog.Default()}
}

// List serves GET /api/plants.
func (h *PlantHandler) List(ctx context.Context, c *app.RequestContext) {
	plants, err := h.usecase.List(ctx)
	if err != nil {
		h.logger.Warn("plant list failed", "error", err)
		plantFailure(c, err)
		return
	}

	plantSuccess(c, plants)
}
