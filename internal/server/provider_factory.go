package server

import (
	"time"

	"log/slog"

	"schedule-density-service/internal/config"
	"schedule-density-service/internal/metrics"
	"schedule-density-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	base := selectProvider(cfg, f.logger)
	wrapped := base
	// Only the upstream feed needs quota protection; local providers can be
	// hit as often as the poller likes.
	if cfg.Provider == "feed" {
		wrapped = providers.NewRateLimitedProvider(base, time.Minute, f.logger)
	}
	return providers.NewRetryingProvider(wrapped, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}
