package http

import (
	nethttp "net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"log/slog"

	"schedule-density-service/internal/app/schedule"
	"schedule-density-service/internal/app/stats"
	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/logging"
	"schedule-density-service/internal/poller"
	"schedule-density-service/internal/reports"
	"schedule-density-service/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the app services.
type Handler struct {
	schedule *schedule.Service
	stats    *stats.Service
	reports  reports.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(scheduleSvc *schedule.Service, statsSvc *stats.Service, reportStore reports.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		schedule: scheduleSvc,
		stats:    statsSvc,
		reports:  reportStore,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

type metricsResponse struct {
	League     string               `json:"league"`
	Season     string               `json:"season"`
	ComputedAt time.Time            `json:"computedAt,omitempty"`
	Columns    []string             `json:"columns"`
	Rows       []domain.TeamMetrics `json:"rows"`
}

// TeamMetricsTable returns the merged per-team density table. Before the
// first analysis the table is empty but still carries the full column set.
func (h *Handler) TeamMetricsTable(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	table := h.stats.Table()
	resp := metricsResponse{
		Columns: table.Columns,
		Rows:    table.Rows,
	}
	if resp.Rows == nil {
		resp.Rows = []domain.TeamMetrics{}
	}
	if analysis, ok := h.stats.Snapshot(); ok {
		resp.League = analysis.League
		resp.Season = analysis.Season
		resp.ComputedAt = analysis.ComputedAt
	}
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served metrics table", slog.Int(logging.FieldCount, len(resp.Rows)))
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// TeamMetricsByTeam returns a single team's density row.
func (h *Handler) TeamMetricsByTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	// Expect path: /metrics/teams/{team}
	raw := strings.TrimPrefix(r.URL.Path, "/metrics/teams/")
	team, err := url.PathUnescape(raw)
	if err != nil || team == "" || strings.ContainsAny(team, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team", h.logger)
		return
	}

	row, ok := h.stats.TeamRow(team)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, row, h.logger)
}

type scheduleResponse struct {
	League string        `json:"league"`
	Season string        `json:"season"`
	Games  []domain.Game `json:"games"`
}

// Schedule returns the analyzed season schedule.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	resp := scheduleResponse{Games: h.schedule.Games()}
	if resp.Games == nil {
		resp.Games = []domain.Game{}
	}
	if analysis, ok := h.stats.Snapshot(); ok {
		resp.League = analysis.League
		resp.Season = analysis.Season
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

type calendarResponse struct {
	Dates []string `json:"dates"`
}

// Calendar returns the distinct game dates in ascending order.
func (h *Handler) Calendar(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	calendar := h.schedule.Calendar()
	dates := make([]string, 0, len(calendar))
	for _, d := range calendar {
		dates = append(dates, timeutil.FormatDate(d))
	}
	writeJSON(w, nethttp.StatusOK, calendarResponse{Dates: dates}, h.logger)
}

// LatestReport streams the newest CSV report from disk.
func (h *Handler) LatestReport(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.reports == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "report store not configured", h.logger)
		return
	}
	date, data, err := h.reports.LatestReport()
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, r, nethttp.StatusNotFound, "no reports written yet", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, "failed to read report", h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("X-Report-Date", date)
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(data)
}
