package schedule

import (
	"testing"
	"time"

	"schedule-density-service/internal/domain"
)

type stubStore struct {
	analysis domain.Analysis
	ok       bool
}

func (s *stubStore) Analysis() (domain.Analysis, bool) {
	return s.analysis, s.ok
}

func TestServiceReturnsPublishedSchedule(t *testing.T) {
	date := time.Date(2021, 10, 19, 0, 0, 0, 0, time.UTC)
	svc := NewService(&stubStore{
		ok: true,
		analysis: domain.Analysis{
			Games:    []domain.Game{{ID: "g1", HomeTeam: "MIL", AwayTeam: "BKN", Date: date}},
			Calendar: []time.Time{date},
			Teams:    []string{"BKN", "MIL"},
		},
	})

	if got := svc.Games(); len(got) != 1 || got[0].ID != "g1" {
		t.Fatalf("unexpected games %+v", got)
	}
	if got := svc.Calendar(); len(got) != 1 || !got[0].Equal(date) {
		t.Fatalf("unexpected calendar %+v", got)
	}
	if got := svc.Teams(); len(got) != 2 || got[0] != "BKN" {
		t.Fatalf("unexpected teams %+v", got)
	}
}

func TestServiceBeforeFirstAnalysis(t *testing.T) {
	svc := NewService(&stubStore{})

	if got := svc.Games(); got != nil {
		t.Fatalf("expected nil games, got %+v", got)
	}
	if got := svc.Calendar(); got != nil {
		t.Fatalf("expected nil calendar, got %+v", got)
	}
	if got := svc.Teams(); got != nil {
		t.Fatalf("expected nil teams, got %+v", got)
	}
}
