package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"schedule-density-service/internal/domain"
)

// StubProvider is a test double for providers.ScheduleProvider.
type StubProvider struct {
	Games  []domain.Game
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchSchedule returns configured games and error while tracking calls.
func (s *StubProvider) FetchSchedule(ctx context.Context, season string) ([]domain.Game, error) {
	_ = ctx
	_ = season
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Games, s.Err
}

// StubPublisher is a test double for poller.Publisher.
type StubPublisher struct {
	mu        sync.Mutex
	Published []domain.Analysis
}

// SetAnalysis records the published analysis for verification in tests.
func (p *StubPublisher) SetAnalysis(a domain.Analysis) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Published = append(p.Published, a)
}

// Latest returns the most recently published analysis.
func (p *StubPublisher) Latest() (domain.Analysis, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Published) == 0 {
		return domain.Analysis{}, false
	}
	return p.Published[len(p.Published)-1], true
}

// StubReportWriter is a test double for poller.ReportWriter.
type StubReportWriter struct {
	mu      sync.Mutex
	Written map[string]domain.MetricsTable // keyed by date
	Err     error
}

// WriteMetricsReport records the table for verification in tests.
func (w *StubReportWriter) WriteMetricsReport(date string, table domain.MetricsTable) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Written == nil {
		w.Written = make(map[string]domain.MetricsTable)
	}
	w.Written[date] = table
	return nil
}

// Report returns a written table by date.
func (w *StubReportWriter) Report(date string) (domain.MetricsTable, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	table, ok := w.Written[date]
	return table, ok
}
