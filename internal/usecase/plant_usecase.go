package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/zhar97/solar-om-analytics/internal/dataset"
	"github.com/zhar97/solar-om-analytics/internal/domain"
)

// PlantUsecase serves the plant summary view.
type PlantUsecase struct {
	store  *dataset.Store
	logger *slog.Logger
}

// NewPlantUsecase creates a plant usecase.
func NewPlantUsecase(store *dataset.Store, logger *slog.Logger) *PlantUsecase {
	return &PlantUsecase{store: store, logger: logger}
}

// List returns every monitored plant ordered by id.
func (u *PlantUsecase) List(ctx context.Context) ([]domain.Plant, error) {
	plants, err := u.store.Plants()
	if err != nil {
		return nil, err
	}

	sort.Slice(plants, func(i, j int) bool {
		return plants[i].PlantID < plants[j].PlantID
	})

	u.logger.DebugContext(ctx, "plant query served", "count", len(plants))
	return plants, nil
}
