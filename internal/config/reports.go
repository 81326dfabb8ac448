package config

// ReportsConfig controls where CSV reports land and how long they are kept.
type ReportsConfig struct {
	Folder        string
	RetentionDays int
	AdminToken    string // auth for the manual recompute endpoint
}

func loadReports() ReportsConfig {
	return ReportsConfig{
		Folder:        envOrDefault(envReportsDir, defaultReportsDir),
		RetentionDays: intEnvOrDefault(envReportRetention, defaultReportRetention),
		AdminToken:    envOrDefault(envAdminToken, ""),
	}
}
