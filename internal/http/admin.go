package http

import (
	"context"
	nethttp "net/http"

	"log/slog"

	"schedule-density-service/internal/logging"
)

// Recomputer triggers an immediate fetch-and-analyze cycle.
type Recomputer interface {
	Recompute(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	recomputer Recomputer
	token      string
	logger     *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(recomputer Recomputer, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		recomputer: recomputer,
		token:      token,
		logger:     logger,
	}
}

// Recompute runs one analysis cycle outside the polling schedule.
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) Recompute(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", clientIP(r)),
		)
		writeError(w, r, nethttp.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.recomputer == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "recompute not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.recomputer.Recompute(r.Context()); err != nil {
		logging.Warn(logger, "admin recompute failed", slog.Any("err", err))
		writeError(w, r, nethttp.StatusBadGateway, "recompute failed", logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, logger)
	logging.Info(logger, "admin recompute complete")
}

func (h *AdminHandler) authorize(r *nethttp.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}

func clientIP(r *nethttp.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}
