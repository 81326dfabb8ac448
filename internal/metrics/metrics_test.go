package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderProviderAttempts(t *testing.T) {
	rec := NewRecorder()

	rec.RecordProviderAttempt("feed", 20*time.Millisecond, nil)
	rec.RecordProviderAttempt("feed", 30*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("feed"); got != 2 {
		t.Fatalf("expected 2 calls got %d", got)
	}
	if got := rec.ProviderErrors("feed"); got != 1 {
		t.Fatalf("expected 1 error got %d", got)
	}
	if got := rec.Snapshot("feed").LastCallLatency; got != 30*time.Millisecond {
		t.Fatalf("expected last latency 30ms got %s", got)
	}
	if got := rec.ProviderCalls("other"); got != 0 {
		t.Fatalf("expected 0 calls for unknown provider got %d", got)
	}
}

func TestRecorderRateLimits(t *testing.T) {
	rec := NewRecorder()

	rec.RecordRateLimit("feed", 45*time.Second)
	rec.RecordRateLimit("feed", 0)

	if got := rec.RateLimitHits("feed"); got != 2 {
		t.Fatalf("expected 2 hits got %d", got)
	}
	if got := rec.LastRetryAfter("feed"); got != 45*time.Second {
		t.Fatalf("expected retry-after 45s preserved, got %s", got)
	}
}

func TestRecorderAnalysisRuns(t *testing.T) {
	rec := NewRecorder()

	rec.RecordAnalysisRun(30, 120*time.Millisecond, nil)
	rec.RecordAnalysisRun(0, 5*time.Millisecond, errors.New("fetch failed"))

	snap := rec.AnalysisSnapshot()
	if snap.Runs != 2 {
		t.Fatalf("expected 2 runs got %d", snap.Runs)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error got %d", snap.Errors)
	}
	if snap.LastTeams != 30 {
		t.Fatalf("expected failed run to keep last team count, got %d", snap.LastTeams)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder

	// Must not panic.
	rec.RecordProviderAttempt("feed", time.Millisecond, nil)
	rec.RecordRateLimit("feed", time.Second)
	rec.RecordAnalysisRun(1, time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if rec.ProviderCalls("feed") != 0 || rec.AnalysisRuns() != 0 {
		t.Fatal("expected zero stats from nil recorder")
	}
}

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder even when disabled")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, Port: "0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil || handler == nil {
		t.Fatal("expected recorder and prometheus handler")
	}
	rec.RecordAnalysisRun(4, time.Millisecond, nil)
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}
