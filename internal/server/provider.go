package server

import (
	"log/slog"

	"schedule-density-service/internal/config"
	"schedule-density-service/internal/providers"
	"schedule-density-service/internal/providers/fixture"
	"schedule-density-service/internal/providers/leaguefeed"
	"schedule-density-service/internal/providers/schedfile"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScheduleProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New(cfg.League)
	case "file":
		return schedfile.New(schedfile.Config{
			Path:   cfg.ScheduleFile,
			League: cfg.League,
			Season: cfg.Season,
		}, logger)
	case "feed":
		return leaguefeed.NewClient(leaguefeed.Config{
			BaseURL:  cfg.Feed.BaseURL,
			APIKey:   cfg.Feed.APIKey,
			League:   cfg.League,
			MaxPages: cfg.Feed.MaxPages,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(cfg.League)
	}
}
