package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler, admin *AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/metrics/teams", handler.TeamMetricsTable)
	mux.HandleFunc("/metrics/teams/", handler.TeamMetricsByTeam)
	mux.HandleFunc("/schedule", handler.Schedule)
	mux.HandleFunc("/schedule/calendar", handler.Calendar)
	mux.HandleFunc("/reports/latest", handler.LatestReport)
	if admin != nil {
		mux.HandleFunc("/admin/recompute", admin.Recompute)
	}
	return mux
}
