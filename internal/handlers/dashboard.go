// internal/handlers/dashboard.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/core/ports"
)

// DashboardHandler serves ledger summary statistics
type DashboardHandler struct {
	ledger ports.Ledger
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(ledger ports.Ledger, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		ledger: ledger,
		logger: logger.With(slog.String("handler", "dashboard")),
	}
}

// DashboardData is the dashboard response body
type DashboardData struct {
	Stats     domain.Stats `json:"stats"`
	Timestamp time.Time    `json:"timestamp"`
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DashboardData{
		Stats:     h.ledger.Stats(),
		Timestamp: time.Now(),
	})
}
