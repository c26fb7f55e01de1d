// Package dataset loads the analytics results served by the API from a
// YAML file and keeps them in memory. The store is the repository
// behind the usecase layer; queries always see a consistent snapshot.
package dataset

import (
	"fmt"
	"os"
	"sync"

	"sigs.k8s.io/yaml"

	"github.com/zhar97/solar-om-analytics/internal/domain"
)

// Dataset is the on-disk analytics snapshot.
type Dataset struct {
	GeneratedAt string           `json:"generated_at,omitempty"`
	Plants      []domain.Plant   `json:"plants"`
	Anomalies   []domain.Anomaly `json:"anomalies"`
	Patterns    []domain.Pattern `json:"patterns"`
	Insights    []domain.Insight `json:"insights"`
}

// Store serves the loaded dataset. Reload swaps the snapshot
// atomically; readers never observe a partially loaded dataset.
type Store struct {
	mu   sync.RWMutex
	data *Dataset
	path string
}

// NewStore creates an empty store reading from path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads and parses the dataset file, replacing the current
// snapshot on success and leaving it untouched on failure.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read dataset file: %w", err)
	}

	var data Dataset
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse dataset file: %w", err)
	}

	s.mu.Lock()
	s.data = &data
	s.mu.Unlock()

	return nil
}

// Loaded reports whether a dataset snapshot is available.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data != nil
}

// snapshot returns the current dataset or a NO_DATA error.
func (s *Store) snapshot() (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, domain.NewNoDataError()
	}
	return s.data, nil
}

// Plants returns all plants.
func (s *Store) Plants() ([]domain.Plant, error) {
	data, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return append([]domain.Plant(nil), data.Plants...), nil
}

// HasPlant reports whether a plant id exists in the dataset.
func (s *Store) HasPlant(plantID string) (bool, error) {
	data, err := s.snapshot()
	if err != nil {
		return false, err
	}
	for _, p := range data.Plants {
		if p.PlantID == plantID {
			return true, nil
		}
	}
	return false, nil
}

// Anomalies returns all anomalies across all plants.
func (s *Store) Anomalies() ([]domain.Anomaly, error) {
	data, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return append([]domain.Anomaly(nil), data.Anomalies...), nil
}

// AnomaliesByPlant returns the anomalies recorded for one plant.
func (s *Store) AnomaliesByPlant(plantID string) ([]domain.Anomaly, error) {
	data, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	var out []domain.Anomaly
	for _, a := range data.Anomalies {
		if a.PlantID == plantID {
			out = append(out, a)
		}
	}
	return out, nil
}

// Patterns returns all detected patterns.
func (s *Store) Patterns() ([]domain.Pattern, error) {
	data, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return append([]domain.Pattern(nil), data.Patterns...), nil
}

// Insights returns all generated insights.
func (s *Store) Insights() ([]domain.Insight, error) {
	data, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return append([]domain.Insight(nil), data.Insights...), nil
}

// AnomalyCount returns the number of anomalies recorded for a plant.
func (s *Store) AnomalyCount(plantID string) (int, error) {
	anomalies, err := s.AnomaliesByPlant(plantID)
	if err != nil {
		return 0, err
	}
	return len(anomalies), nil
}
