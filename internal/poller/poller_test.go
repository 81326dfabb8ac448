package poller

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"log/slog"

	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/metrics"
	"schedule-density-service/internal/teststubs"
	"schedule-density-service/internal/timeutil"
)

func sampleGames(t *testing.T) []domain.Game {
	t.Helper()
	var games []domain.Game
	rows := []struct {
		date string
		home string
		away string
	}{
		{"2021-10-19", "MIL", "BKN"},
		{"2021-10-20", "MIL", "BOS"},
		{"2021-10-22", "BKN", "BOS"},
	}
	for i, row := range rows {
		date, err := timeutil.ParseDate(row.date)
		if err != nil {
			t.Fatalf("parse date: %v", err)
		}
		games = append(games, domain.Game{
			ID:       "g" + string(rune('1'+i)),
			Date:     date,
			HomeTeam: row.home,
			AwayTeam: row.away,
		})
	}
	return games
}

func TestPollerPublishesAnalysisAndWritesReport(t *testing.T) {
	provider := &teststubs.StubProvider{
		Games:  sampleGames(t),
		Notify: make(chan struct{}),
	}
	pub := &teststubs.StubPublisher{}
	writer := &teststubs.StubReportWriter{}

	p := New(provider, pub, writer, nil, nil, 10*time.Millisecond, "nba", "2021")
	p.now = func() time.Time { return time.Date(2021, 10, 25, 12, 0, 0, 0, time.UTC) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	time.Sleep(30 * time.Millisecond) // allow at least one ticker fire

	cancel()
	_ = p.Stop(context.Background())

	analysis, ok := pub.Latest()
	if !ok {
		t.Fatal("expected published analysis")
	}
	if analysis.League != "nba" || analysis.Season != "2021" {
		t.Fatalf("unexpected analysis labels %+v", analysis)
	}
	if len(analysis.Calendar) != 3 || len(analysis.Teams) != 3 {
		t.Fatalf("unexpected derived data: calendar=%d teams=%d", len(analysis.Calendar), len(analysis.Teams))
	}
	row, ok := analysis.Table.Row("MIL")
	if !ok {
		t.Fatal("expected MIL row in table")
	}
	if got := row.Value("Back2Backs_all"); got != 1 {
		t.Fatalf("expected MIL Back2Backs_all=1, got %d", got)
	}

	table, ok := writer.Report("2021-10-25")
	if !ok {
		t.Fatal("expected report written for 2021-10-25")
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 report rows, got %d", len(table.Rows))
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	provider := &teststubs.StubProvider{
		Games:  []domain.Game{},
		Notify: make(chan struct{}),
	}

	p := New(provider, &teststubs.StubPublisher{}, &teststubs.StubReportWriter{}, nil, nil, 5*time.Millisecond, "nba", "2021")
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	cancel()
	_ = p.Stop(context.Background())

	callsAfterStop := provider.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if provider.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional fetches after stop; before=%d after=%d", callsAfterStop, provider.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubProvider{}, nil, nil, nil, nil, time.Hour, "nba", "2021")

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubProvider{}, nil, nil, nil, nil, time.Hour, "nba", "2021")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&teststubs.StubProvider{}, nil, nil, nil, nil, 0, "nba", "2021")
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	provider := &teststubs.StubProvider{
		Games: sampleGames(t),
		Err:   errors.New("boom"),
	}

	p := New(provider, &teststubs.StubPublisher{}, &teststubs.StubReportWriter{}, nil, nil, time.Millisecond, "nba", "2021")

	_ = p.runOnce(context.Background())
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}

	provider.Err = nil
	if err := p.runOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	status = p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset, got %d", status.ConsecutiveFailures)
	}
	if status.LastSuccess.IsZero() {
		t.Fatalf("expected success timestamp")
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestPollerRecompute(t *testing.T) {
	provider := &teststubs.StubProvider{Games: sampleGames(t)}
	pub := &teststubs.StubPublisher{}
	rec := metrics.NewRecorder()

	p := New(provider, pub, nil, nil, rec, time.Hour, "nba", "2021")

	if err := p.Recompute(context.Background()); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if _, ok := pub.Latest(); !ok {
		t.Fatal("expected analysis published by recompute")
	}
	if rec.AnalysisRuns() != 1 || rec.AnalysisErrors() != 0 {
		t.Fatalf("unexpected recorder state: runs=%d errors=%d", rec.AnalysisRuns(), rec.AnalysisErrors())
	}
}

func TestPollerRecordsAnalysisErrors(t *testing.T) {
	provider := &teststubs.StubProvider{Err: errors.New("down")}
	rec := metrics.NewRecorder()

	p := New(provider, nil, nil, nil, rec, time.Hour, "nba", "2021")

	if err := p.Recompute(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	if rec.AnalysisRuns() != 1 || rec.AnalysisErrors() != 1 {
		t.Fatalf("unexpected recorder state: runs=%d errors=%d", rec.AnalysisRuns(), rec.AnalysisErrors())
	}
}

func TestPollerNilWriterDoesNotPanic(t *testing.T) {
	provider := &teststubs.StubProvider{Games: sampleGames(t)}
	p := New(provider, nil, nil, nil, nil, time.Minute, "nba", "2021")
	_ = p.runOnce(context.Background()) // should not panic
}

func TestPollerWriteErrorLogsButContinues(t *testing.T) {
	provider := &teststubs.StubProvider{Games: sampleGames(t)}
	writer := &teststubs.StubReportWriter{Err: errors.New("write failed")}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	p := New(provider, &teststubs.StubPublisher{}, writer, logger, nil, time.Minute, "nba", "2021")
	if err := p.runOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Status().ConsecutiveFailures != 0 {
		t.Fatalf("expected success despite write error")
	}
}

func TestPollerProviderExposesWrappedProvider(t *testing.T) {
	provider := &teststubs.StubProvider{}
	p := New(provider, nil, nil, nil, nil, time.Minute, "nba", "2021")

	if got := p.Provider(); got != provider {
		t.Fatalf("expected provider returned")
	}
}
