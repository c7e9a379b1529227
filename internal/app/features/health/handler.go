// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/agendahub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Pinger is the slice of the sheet connection the probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Conn Pinger
	Log  *zap.Logger
}

func NewHandler(conn Pinger, logger *zap.Logger) *Handler {
	return &Handler{Conn: conn, Log: logger}
}

type healthResponse struct {
	Status    string `json:"status"`
	Sheet     string `json:"sheet"`
	CheckedAt string `json:"checked_at"`
}

// ServeHealth handles GET /healthz. It reports degraded (503) when the
// spreadsheet does not answer the ping; the process itself is fine either
// way.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	resp := healthResponse{
		Status:    "ok",
		Sheet:     "ok",
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}
	code := http.StatusOK

	if err := h.Conn.Ping(ctx); err != nil {
		h.Log.Warn("health ping failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Sheet = err.Error()
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("writing health response failed", zap.Error(err))
	}
}
