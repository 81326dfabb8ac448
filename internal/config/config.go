package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	League       string
	Season       string
	ScheduleFile string
	Feed         FeedConfig
	Reports      ReportsConfig
	Metrics      MetricsConfig
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		League:       envOrDefault(envLeague, defaultLeague),
		Season:       envOrDefault(envSeason, defaultSeason),
		ScheduleFile: envOrDefault(envScheduleFile, ""),
		Feed:         loadFeed(),
		Reports:      loadReports(),
		Metrics:      loadMetrics(),
	}
}
