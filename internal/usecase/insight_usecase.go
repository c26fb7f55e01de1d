package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/zhar97/solar-om-analytics/internal/dataset"
	"github.com/zhar97/solar-om-analytics/internal/domain"
)

// InsightListParams are the accepted insight query parameters.
// MinConfidence of zero means no confidence floor.
type InsightListParams struct {
	PlantID       string
	InsightType   string
	Urgency       string
	MinConfidence int
	SortBy        string
	SortOrder     string
	Skip          int
	Limit         int
}

// InsightUsecase serves insight list queries.
type InsightUsecase struct {
	store  *dataset.Store
	logger *slog.Logger
}

// NewInsightUsecase creates an insight usecase.
func NewInsightUsecase(store *dataset.Store, logger *slog.Logger) *InsightUsecase {
	return &InsightUsecase{store: store, logger: logger}
}

// List returns one page of insights and the total match count.
func (u *InsightUsecase) List(ctx context.Context, params InsightListParams) ([]domain.Insight, int, error) {
	insights, err := u.store.Insights()
	if err != nil {
		return nil, 0, err
	}

	if params.PlantID != "" {
		insights = filterInsights(insights, func(in domain.Insight) bool {
			return in.PlantID == params.PlantID
		})
	}
	if params.InsightType != "" {
		insights = filterInsights(insights, func(in domain.Insight) bool {
			return in.InsightType == params.InsightType
		})
	}
	if params.Urgency != "" {
		if domain.SeverityRank(params.Urgency) < 0 {
			return nil, 0, domain.NewInvalidInputError("invalid urgency: " + params.Urgency)
		}
		insights = filterInsights(insights, func(in domain.Insight) bool {
			return in.Urgency == params.Urgency
		})
	}
	if params.MinConfidence > 0 {
		floor := float64(params.MinConfidence)
		insights = filterInsights(insights, func(in domain.Insight) bool {
			return in.Confidence >= floor
		})
	}

	sortInsights(insights, params.SortBy, params.SortOrder)

	total := len(insights)
	page := paginate(insights, params.Skip, params.Limit)

	u.logger.DebugContext(ctx, "insight query served",
		"plant_id", params.PlantID,
		"total", total,
		"returned", len(page),
	)

	return page, total, nil
}

func filterInsights(insights []domain.Insight, keep func(domain.Insight) bool) []domain.Insight {
	out := insights[:0:0]
	for _, in := range insights {
		if keep(in) {
			out = append(out, in)
		}
	}
	return out
}

func sortInsights(insights []domain.Insight, column, order string) {
	desc := order != "asc"

	less := func(i, j int) bool { return false }
	switch column {
	case "", "confidence":
		less = func(i, j int) bool { return insights[i].Confidence < insights[j].Confidence }
	case "urgency":
		less = func(i, j int) bool {
			return domain.SeverityRank(insights[i].Urgency) < domain.SeverityRank(insights[j].Urgency)
		}
	case "generation_date":
		less = func(i, j int) bool { return insights[i].GenerationDate < insights[j].GenerationDate }
	default:
		return
	}

	if desc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(insights, less)
}
