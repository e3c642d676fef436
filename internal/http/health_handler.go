package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/tuanvumaihuynh/coffee-store/internal/storage/db"
)

const healthCheckTimeout = 2 * time.Second

type healthHandler struct {
	logger  *slog.Logger
	checker db.HealthChecker
}

func (h *healthHandler) Healthz(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if ok, err := h.checker.IsHealthy(ctx); !ok {
		h.logger.WarnContext(ctx, "database is not healthy", slog.Any("error", err))
		return writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
	}

	return writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
