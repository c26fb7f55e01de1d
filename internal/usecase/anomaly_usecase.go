// Package usecase implements the analytics query semantics: filtering,
// sorting and pagination over the loaded dataset.
package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/zhar97/solar-om-analytics/internal/dataset"
	"github.com/zhar97/solar-om-analytics/internal/domain"
)

// AnomalyListParams are the accepted anomaly query parameters. Zero
// values mean "not constrained".
type AnomalyListParams struct {
	PlantID  string
	Metric   string
	Severity string
	Sort     string
	Order    string
	Skip     int
	Limit    int
}

// AnomalyUsecase serves anomaly list queries.
type AnomalyUsecase struct {
	store  *dataset.Store
	logger *slog.Logger
}

// NewAnomalyUsecase creates an anomaly usecase.
func NewAnomalyUsecase(store *dataset.Store, logger *slog.Logger) *AnomalyUsecase {
	return &AnomalyUsecase{store: store, logger: logger}
}

// List returns one page of anomalies and the total match count.
// Querying an unknown plant is NOT_FOUND rather than an empty page.
func (u *AnomalyUsecase) List(ctx context.Context, params AnomalyListParams) ([]domain.Anomaly, int, error) {
	var (
		anomalies []domain.Anomaly
		err       error
	)

	if params.PlantID != "" {
		known, err := u.store.HasPlant(params.PlantID)
		if err != nil {
			return nil, 0, err
		}
		if !known {
			return nil, 0, domain.NewNotFoundError("plant", params.PlantID)
		}
		anomalies, err = u.store.AnomaliesByPlant(params.PlantID)
		if err != nil {
			return nil, 0, err
		}
	} else {
		anomalies, err = u.store.Anomalies()
		if err != nil {
			return nil, 0, err
		}
	}

	if params.Metric != "" {
		anomalies = filterAnomalies(anomalies, func(a domain.Anomaly) bool {
			return a.MetricName == params.Metric
		})
	}
	if params.Severity != "" {
		if domain.SeverityRank(params.Severity) < 0 {
			return nil, 0, domain.NewInvalidInputError("invalid severity: " + params.Severity)
		}
		anomalies = filterAnomalies(anomalies, func(a domain.Anomaly) bool {
			return a.Severity == params.Severity
		})
	}

	sortAnomalies(anomalies, params.Sort, params.Order)

	total := len(anomalies)
	page := paginate(anomalies, params.Skip, params.Limit)

	u.logger.DebugContext(ctx, "anomaly query served",
		"plant_id", params.PlantID,
		"total", total,
		"returned", len(page),
	)

	return page, total, nil
}

func filterAnomalies(anomalies []domain.Anomaly, keep func(domain.Anomaly) bool) []domain.Anomaly {
	out := anomalies[:0:0]
	for _, a := range anomalies {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// sortAnomalies orders by date or severity rank. Date strings are
// ISO-8601 so lexical comparison is chronological.
func sortAnomalies(anomalies []domain.Anomaly, column, order string) {
	desc := order != "asc"

	switch column {
	case "", "date":
		sort.SliceStable(anomalies, func(i, j int) bool {
			if desc {
				return anomalies[i].Date > anomalies[j].Date
			}
			return anomalies[i].Date < anomalies[j].Date
		})
	case "severity":
		sort.SliceStable(anomalies, func(i, j int) bool {
			ri, rj := domain.SeverityRank(anomalies[i].Severity), domain.SeverityRank(anomalies[j].Severity)
			if desc {
				return ri > rj
			}
			return ri < rj
		})
	}
}

// paginate slices out [skip, skip+limit), clamping at the ends.
func paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return nil
	}
	end := skip + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
