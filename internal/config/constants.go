package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envLeague       = "LEAGUE"
	envSeason       = "SEASON"
	envScheduleFile = "SCHEDULE_FILE"

	envFeedBaseURL  = "FEED_BASE_URL"
	envFeedAPIKey   = "FEED_API_KEY"
	envFeedMaxPages = "FEED_MAX_PAGES"

	envReportsDir      = "REPORTS_DIR"
	envReportRetention = "REPORT_RETENTION_DAYS"
	envAdminToken      = "ADMIN_TOKEN"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// A season schedule rarely changes more than a few times a day; polling
	// every 15 minutes picks up reschedules without hammering the feed.
	defaultPollInterval = 15 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultLeague       = "nba"
	defaultSeason       = "2021"

	defaultFeedBaseURL  = "https://api.leaguefeed.example.com/v1"
	defaultFeedMaxPages = 10

	defaultReportsDir      = "data/reports"
	defaultReportRetention = 14
	defaultMetricsPort     = "9090"
)
