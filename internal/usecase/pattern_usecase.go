package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/zhar97/solar-om-analytics/internal/dataset"
	"github.com/zhar97/solar-om-analytics/internal/domain"
)

// PatternListParams are the accepted pattern query parameters.
// MinConfidence of zero means no confidence floor.
type PatternListParams struct {
	PlantID       string
	PatternType   string
	MinConfidence int
	SortBy        string
	SortOrder     string
	Skip          int
	Limit         int
}

// PatternUsecase serves pattern list queries.
type PatternUsecase struct {
	store  *dataset.Store
	logger *slog.Logger
}

// NewPatternUsecase creates a pattern usecase.
func NewPatternUsecase(store *dataset.Store, logger *slog.Logger) *PatternUsecase {
	return &PatternUsecase{store: store, logger: logger}
}

// List returns one page of patterns and the total match count.
func (u *PatternUsecase) List(ctx context.Context, params PatternListParams) ([]domain.Pattern, int, error) {
	patterns, err := u.store.Patterns()
	if err != nil {
		return nil, 0, err
	}

	if params.PlantID != "" {
		patterns = filterPatterns(patterns, func(p domain.Pattern) bool {
			return p.PlantID == params.PlantID
		})
	}
	if params.PatternType != "" {
		patterns = filterPatterns(patterns, func(p domain.Pattern) bool {
			return p.PatternType == params.PatternType
		})
	}
	if params.MinConfidence > 0 {
		floor := float64(params.MinConfidence)
		patterns = filterPatterns(patterns, func(p domain.Pattern) bool {
			return p.ConfidencePct >= floor
		})
	}

	sortPatterns(patterns, params.SortBy, params.SortOrder)

	total := len(patterns)
	page := paginate(patterns, params.Skip, params.Limit)

	u.logger.DebugContext(ctx, "pattern query served",
		"plant_id", params.PlantID,
		"total", total,
		"returned", len(page),
	)

	return page, total, nil
}

func filterPatterns(patterns []domain.Pattern, keep func(domain.Pattern) bool) []domain.Pattern {
	out := patterns[:0:0]
	for _, p := range patterns {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func sortPatterns(patterns []domain.Pattern, column, order string) {
	desc := order != "asc"

	less := func(i, j int) bool { return false }
	switch column {
	case "", "confidence_pct":
		less = func(i, j int) bool { return patterns[i].ConfidencePct < patterns[j].ConfidencePct }
	case "significance_score":
		less = func(i, j int) bool { return patterns[i].SignificanceScore < patterns[j].SignificanceScore }
	case "first_observed_date":
		less = func(i, j int) bool { return patterns[i].FirstObservedDate < patterns[j].FirstObservedDate }
	default:
		return
	}

	if desc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(patterns, less)
}
