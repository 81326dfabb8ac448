package poller

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"schedule-density-service/internal/density"
	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/logging"
	"schedule-density-service/internal/metrics"
	"schedule-density-service/internal/providers"
	"schedule-density-service/internal/timeutil"
)

const defaultInterval = 15 * time.Minute

// Publisher receives the analysis produced by each successful cycle.
type Publisher interface {
	SetAnalysis(a domain.Analysis)
}

// ReportWriter persists the density table to disk.
type ReportWriter interface {
	WriteMetricsReport(date string, table domain.MetricsTable) error
}

// Poller fetches the schedule on an interval, recomputes density metrics and
// publishes the result.
type Poller struct {
	provider providers.ScheduleProvider
	pub      Publisher
	writer   ReportWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	league   string
	season   string
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.ScheduleProvider, pub Publisher, writer ReportWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, league, season string) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		pub:      pub,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		league:   league,
		season:   season,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started",
			slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
			slog.String(logging.FieldLeague, p.league),
			slog.String(logging.FieldSeason, p.season),
		)
		// Initial run to warm data on boot.
		_ = p.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				_ = p.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Recompute runs one fetch-and-analyze cycle outside the polling schedule.
func (p *Poller) Recompute(ctx context.Context) error {
	return p.runOnce(ctx)
}

func (p *Poller) runOnce(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)

	games, err := p.provider.FetchSchedule(ctx, p.season)
	if err != nil {
		p.recordAnalysis(0, start, err)
		p.logError("poller fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	calendar := domain.DeriveCalendar(games)
	teams := domain.DeriveTeams(games)
	table, err := density.BuildTeamMetrics(games, calendar, teams)
	if err != nil {
		p.recordAnalysis(len(teams), start, err)
		p.logError("poller analysis failed", err)
		p.recordFailure(err, start)
		return err
	}

	analysis := domain.Analysis{
		League:     p.league,
		Season:     p.season,
		ComputedAt: p.now().UTC(),
		Games:      games,
		Calendar:   calendar,
		Teams:      teams,
		Table:      table,
	}
	if p.pub != nil {
		p.pub.SetAnalysis(analysis)
	}

	if p.writer != nil {
		date := timeutil.FormatDate(p.now().UTC())
		if writeErr := p.writer.WriteMetricsReport(date, table); writeErr != nil {
			p.logError("poller report write failed", writeErr)
		}
	}

	p.recordAnalysis(len(teams), start, nil)
	p.recordSuccess(start)
	p.logInfo("poller refreshed analysis",
		logging.FieldCount, len(games),
		"teams", len(teams),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) recordAnalysis(teams int, start time.Time, err error) {
	if p.metrics != nil {
		p.metrics.RecordAnalysisRun(teams, time.Since(start), err)
	}
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.ScheduleProvider {
	return p.provider
}
