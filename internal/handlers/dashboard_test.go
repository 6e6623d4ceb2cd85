// internal/handlers/dashboard_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/handlers"
	"github.com/smoradi/stockroom-be/test/helpers"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	ledger := seedLedger(t,
		helpers.CreateTestProduct(func(p *domain.Product) {
			p.Code = "P-001"
			p.Capacity = 100
			p.CurrentStock = 50
		}),
		helpers.CreateTestProduct(func(p *domain.Product) {
			p.Code = "P-002"
			p.Capacity = 200
			p.CurrentStock = 3
		}),
	)
	require.NoError(t, ledger.AddUser(helpers.CreateTestUser()))
	handler := handlers.NewDashboardHandler(ledger, helpers.TestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	handler.GetDashboard(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var data handlers.DashboardData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, 2, data.Stats.TotalProducts)
	assert.Equal(t, 1, data.Stats.TotalUsers)
	assert.Equal(t, 53, data.Stats.TotalStock)
	assert.Equal(t, 300, data.Stats.TotalCapacity)
	assert.Equal(t, 1, data.Stats.LowStockProducts)
	assert.False(t, data.Timestamp.IsZero())
}

func TestHealthHandler_Probes(t *testing.T) {
	ledger := seedLedger(t, helpers.CreateTestProduct())
	handler := handlers.NewHealthHandler(ledger, helpers.LoadTestConfig(), helpers.TestLogger())

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		handler.Health(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var status handlers.HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "test", status.Environment)
	})

	t.Run("readiness", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()
		handler.Readiness(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Status string       `json:"status"`
			Ledger domain.Stats `json:"ledger"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ready", response.Status)
		assert.Equal(t, 1, response.Ledger.TotalProducts)
	})
}
