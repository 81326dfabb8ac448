package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type analysisStats struct {
	runs         int
	errors       int
	lastTeams    int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// analysis runs. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	analysis analysisStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordAnalysisRun tracks one aggregation cycle: how many teams were scored,
// how long the cycle took, and whether it failed.
func (r *Recorder) RecordAnalysisRun(teams int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.analysis.runs++
	r.analysis.lastDuration = duration
	if err != nil {
		r.analysis.errors++
	} else {
		r.analysis.lastTeams = teams
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAnalysisRun(teams, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// AnalysisRuns returns the total analysis cycles recorded.
func (r *Recorder) AnalysisRuns() int {
	return r.AnalysisSnapshot().Runs
}

// AnalysisErrors returns the total failed analysis cycles recorded.
func (r *Recorder) AnalysisErrors() int {
	return r.AnalysisSnapshot().Errors
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// AnalysisSnapshot is a copy of the current analysis stats.
type AnalysisSnapshot struct {
	Runs         int
	Errors       int
	LastTeams    int
	LastDuration time.Duration
}

func (r *Recorder) AnalysisSnapshot() AnalysisSnapshot {
	if r == nil {
		return AnalysisSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return AnalysisSnapshot{
		Runs:         r.analysis.runs,
		Errors:       r.analysis.errors,
		LastTeams:    r.analysis.lastTeams,
		LastDuration: r.analysis.lastDuration,
	}
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
