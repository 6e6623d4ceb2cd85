// internal/handlers/health.go
package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/smoradi/stockroom-be/internal/core/ports"
	"github.com/smoradi/stockroom-be/internal/pkg/config"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	ledger    ports.Ledger
	cfg       *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(ledger ports.Ledger, cfg *config.Config, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		ledger:    ledger,
		cfg:       cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus is the health probe response body
type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
	GoVersion   string    `json:"go_version"`
	Goroutines  int       `json:"goroutines"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthStatus{
		Status:      "healthy",
		Timestamp:   time.Now(),
		Version:     h.cfg.App.Version,
		Environment: h.cfg.App.Environment,
		Uptime:      time.Since(h.startTime).String(),
		GoVersion:   runtime.Version(),
		Goroutines:  runtime.NumGoroutine(),
	})
}

// Readiness handles GET /ready. The ledger is in-memory, so the process
// is ready as soon as the startup load completed and we are serving.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	stats := h.ledger.Stats()
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
		"ledger": stats,
	})
}
