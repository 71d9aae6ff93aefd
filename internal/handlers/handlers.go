// Package handlers serves the operational HTTP endpoints: health, ping and
// Prometheus metrics.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"smapp/internal/cache"
	"smapp/internal/observability"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers checks the stores the application depends on.
type Handlers struct {
	DB    Pinger
	Cache *cache.Cache
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

const pingTimeout = 2 * time.Second

var pingResponse = []byte(`{"message":"pong"}`)

// Health reports the database and cache state. A failing database makes
// the service unhealthy; a failing cache only degrades it.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Database: "ok", Cache: "disabled"}
	status := http.StatusOK

	if h.DB == nil {
		resp.Database = "unconfigured"
	} else if err := h.DB.PingContext(ctx); err != nil {
		observability.Logger.WarnContext(ctx, "database health check failed", slog.String("error", err.Error()))
		resp.Status = "unhealthy"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}

	if client := h.Cache.Client(); client != nil {
		resp.Cache = "ok"
		if err := client.Ping(ctx).Err(); err != nil {
			resp.Cache = "down"
			if resp.Status == "ok" {
				resp.Status = "degraded"
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		observability.Logger.Error("write error", slog.String("error", err.Error()))
	}
}

func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(pingResponse); err != nil {
		observability.Logger.Error("write error", slog.String("error", err.Error()))
	}
}

// Routes mounts the endpoints on a new mux.
func (h *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ping", h.Ping)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", http.NotFoundHandler())
	return mux
}
