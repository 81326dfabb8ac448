package schedule

import (
	"time"

	"schedule-density-service/internal/domain"
)

// Store defines the contract for reading the published analysis.
type Store interface {
	Analysis() (domain.Analysis, bool)
}

// Service exposes the schedule side of the latest analysis.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the analyzed season schedule.
func (s *Service) Games() []domain.Game {
	a, ok := s.store.Analysis()
	if !ok {
		return nil
	}
	return a.Games
}

// Calendar returns the distinct game dates in ascending order.
func (s *Service) Calendar() []time.Time {
	a, ok := s.store.Analysis()
	if !ok {
		return nil
	}
	return a.Calendar
}

// Teams returns the analyzed team set.
func (s *Service) Teams() []string {
	a, ok := s.store.Analysis()
	if !ok {
		return nil
	}
	return a.Teams
}
