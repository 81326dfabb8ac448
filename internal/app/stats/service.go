package stats

import (
	"schedule-density-service/internal/density"
	"schedule-density-service/internal/domain"
)

// Store defines the contract for reading the published analysis.
type Store interface {
	Analysis() (domain.Analysis, bool)
}

// Service exposes the density metrics side of the latest analysis.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Snapshot returns the full analysis and whether one has been published.
func (s *Service) Snapshot() (domain.Analysis, bool) {
	return s.store.Analysis()
}

// Table returns the merged per-team density table. Before the first
// analysis it returns an empty table with the canonical column set, so
// callers always see the full schema.
func (s *Service) Table() domain.MetricsTable {
	a, ok := s.store.Analysis()
	if !ok {
		return domain.MetricsTable{Columns: density.Columns()}
	}
	return a.Table
}

// TeamRow returns one team's row if the team is part of the analysis.
func (s *Service) TeamRow(team string) (domain.TeamMetrics, bool) {
	a, ok := s.store.Analysis()
	if !ok {
		return domain.TeamMetrics{}, false
	}
	return a.Table.Row(team)
}
