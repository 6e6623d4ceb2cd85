// internal/handlers/products_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/core/services"
	"github.com/smoradi/stockroom-be/internal/handlers"
	"github.com/smoradi/stockroom-be/test/helpers"
)

// seedLedger builds a ledger preloaded with products for handler tests
func seedLedger(t *testing.T, products ...domain.Product) *services.Ledger {
	t.Helper()
	ledger := services.NewLedger(helpers.TestLogger())
	for _, p := range products {
		require.NoError(t, ledger.AddProduct(p))
	}
	return ledger
}

func TestProductHandler_ListProducts(t *testing.T) {
	tests := []struct {
		name          string
		seed          []domain.Product
		query         string
		expectedTotal int
		expectedCodes []string
	}{
		{
			name:          "lists_all_products",
			seed:          helpers.CreateTestProducts(3),
			expectedTotal: 3,
			expectedCodes: []string{"P-001", "P-002", "P-003"},
		},
		{
			name:          "empty_ledger_lists_nothing",
			expectedTotal: 0,
		},
		{
			name: "search_matches_name_case_insensitively",
			seed: []domain.Product{
				helpers.CreateTestProduct(func(p *domain.Product) {
					p.Code = "P-001"
					p.Name = "Copier Paper A4"
				}),
				helpers.CreateTestProduct(func(p *domain.Product) {
					p.Code = "P-002"
					p.Name = "Stapler"
				}),
			},
			query:         "?search=PAPER",
			expectedTotal: 1,
			expectedCodes: []string{"P-001"},
		},
		{
			name: "search_matches_category",
			seed: []domain.Product{
				helpers.CreateTestProduct(func(p *domain.Product) {
					p.Code = "P-001"
					p.Category = "Cleaning"
				}),
				helpers.CreateTestProduct(func(p *domain.Product) {
					p.Code = "P-002"
					p.Category = "Electronics"
				}),
			},
			query:         "?search=clean",
			expectedTotal: 1,
			expectedCodes: []string{"P-001"},
		},
		{
			name:          "search_with_no_match",
			seed:          helpers.CreateTestProducts(2),
			query:         "?search=nonexistent",
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewProductHandler(seedLedger(t, tt.seed...), helpers.TestLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.ListProducts(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response struct {
				Products []handlers.ProductView `json:"products"`
				Total    int                    `json:"total"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedTotal, response.Total)

			for i, code := range tt.expectedCodes {
				assert.Equal(t, code, response.Products[i].Code)
			}
		})
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	handler := handlers.NewProductHandler(seedLedger(t, helpers.CreateTestProduct()), helpers.TestLogger())

	t.Run("returns_product_with_status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/P-001", nil)
		req.SetPathValue("code", "P-001")
		w := httptest.NewRecorder()
		handler.GetProduct(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var view handlers.ProductView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "P-001", view.Code)
		assert.Equal(t, domain.StockNormal, view.Status)
	})

	t.Run("unknown_code_is_not_found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/missing", nil)
		req.SetPathValue("code", "missing")
		w := httptest.NewRecorder()
		handler.GetProduct(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Product not found", response["error"])
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	tests := []struct {
		name           string
		seed           []domain.Product
		body           string
		expectedStatus int
		errorContains  string
	}{
		{
			name:           "creates_product",
			body:           `{"code":"P-010","name":"Desk Lamp","category":"Electronics","capacity":40,"current_stock":3}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate_code_conflicts",
			seed:           []domain.Product{helpers.CreateTestProduct()},
			body:           `{"code":"P-001","name":"Another","capacity":10}`,
			expectedStatus: http.StatusConflict,
			errorContains:  "product code already exists",
		},
		{
			name:           "missing_name_is_bad_request",
			body:           `{"code":"P-010","capacity":10}`,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "name is required",
		},
		{
			name:           "negative_capacity_is_bad_request",
			body:           `{"code":"P-010","name":"Desk Lamp","capacity":-5}`,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "capacity",
		},
		{
			name:           "malformed_json_is_bad_request",
			body:           `{"code":`,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := seedLedger(t, tt.seed...)
			handler := handlers.NewProductHandler(ledger, helpers.TestLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.CreateProduct(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.errorContains != "" {
				var response map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Contains(t, response["error"], tt.errorContains)
			} else {
				var view handlers.ProductView
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
				assert.Equal(t, "P-010", view.Code)
				assert.Equal(t, domain.StockLow, view.Status)

				_, err := ledger.ProductByCode("P-010")
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	t.Run("carries_stock_over_when_omitted", func(t *testing.T) {
		ledger := seedLedger(t, helpers.CreateTestProduct())
		handler := handlers.NewProductHandler(ledger, helpers.TestLogger())

		body := `{"name":"Copier Paper A3","category":"Office Supplies","capacity":600}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/P-001", bytes.NewBufferString(body))
		req.SetPathValue("code", "P-001")
		w := httptest.NewRecorder()
		handler.UpdateProduct(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		got, err := ledger.ProductByCode("P-001")
		require.NoError(t, err)
		assert.Equal(t, "Copier Paper A3", got.Name)
		assert.Equal(t, 600, got.Capacity)
		assert.Equal(t, 120, got.CurrentStock)
	})

	t.Run("explicit_stock_overrides", func(t *testing.T) {
		ledger := seedLedger(t, helpers.CreateTestProduct())
		handler := handlers.NewProductHandler(ledger, helpers.TestLogger())

		body := `{"name":"Copier Paper A4","capacity":500,"current_stock":7}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/P-001", bytes.NewBufferString(body))
		req.SetPathValue("code", "P-001")
		w := httptest.NewRecorder()
		handler.UpdateProduct(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		got, err := ledger.ProductByCode("P-001")
		require.NoError(t, err)
		assert.Equal(t, 7, got.CurrentStock)
	})

	t.Run("unknown_code_is_not_found", func(t *testing.T) {
		handler := handlers.NewProductHandler(seedLedger(t), helpers.TestLogger())

		body := `{"name":"Anything","capacity":10}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/missing", bytes.NewBufferString(body))
		req.SetPathValue("code", "missing")
		w := httptest.NewRecorder()
		handler.UpdateProduct(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("code_change_onto_live_code_conflicts", func(t *testing.T) {
		ledger := seedLedger(t, helpers.CreateTestProducts(2)...)
		handler := handlers.NewProductHandler(ledger, helpers.TestLogger())

		body := `{"code":"P-002","name":"Clash","capacity":10}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/P-001", bytes.NewBufferString(body))
		req.SetPathValue("code", "P-001")
		w := httptest.NewRecorder()
		handler.UpdateProduct(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	ledger := seedLedger(t, helpers.CreateTestProduct())
	handler := handlers.NewProductHandler(ledger, helpers.TestLogger())

	t.Run("deletes_existing_product", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/P-001", nil)
		req.SetPathValue("code", "P-001")
		w := httptest.NewRecorder()
		handler.DeleteProduct(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, ledger.Products())
	})

	t.Run("absent_code_has_same_outcome", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/missing", nil)
		req.SetPathValue("code", "missing")
		w := httptest.NewRecorder()
		handler.DeleteProduct(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "deleted", response["status"])
	})
}

func TestProductHandler_AdjustStock(t *testing.T) {
	tests := []struct {
		name           string
		seed           []domain.Product
		code           string
		body           string
		expectedStatus int
		expectedStock  int
	}{
		{
			name:           "adjust_up",
			seed:           []domain.Product{helpers.CreateTestProduct()},
			code:           "P-001",
			body:           `{"direction":"up"}`,
			expectedStatus: http.StatusOK,
			expectedStock:  121,
		},
		{
			name:           "adjust_down",
			seed:           []domain.Product{helpers.CreateTestProduct()},
			code:           "P-001",
			body:           `{"direction":"down"}`,
			expectedStatus: http.StatusOK,
			expectedStock:  119,
		},
		{
			name: "adjust_down_at_zero_is_unprocessable",
			seed: []domain.Product{helpers.CreateTestProduct(func(p *domain.Product) {
				p.CurrentStock = 0
			})},
			code:           "P-001",
			body:           `{"direction":"down"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown_product_is_not_found",
			code:           "missing",
			body:           `{"direction":"up"}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid_direction_is_bad_request",
			seed:           []domain.Product{helpers.CreateTestProduct()},
			code:           "P-001",
			body:           `{"direction":"sideways"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := seedLedger(t, tt.seed...)
			handler := handlers.NewProductHandler(ledger, helpers.TestLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/products/"+tt.code+"/adjust", bytes.NewBufferString(tt.body))
			req.SetPathValue("code", tt.code)
			w := httptest.NewRecorder()
			handler.AdjustStock(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var view handlers.ProductView
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
				assert.Equal(t, tt.expectedStock, view.CurrentStock)

				// The adjustment is recorded as a quantity-1 movement
				txs := ledger.TransactionsByProduct(tt.code)
				require.Len(t, txs, 1)
				assert.Equal(t, 1, txs[0].Quantity)
			}
		})
	}
}

func TestProductHandler_ProductTransactions(t *testing.T) {
	ledger := seedLedger(t, helpers.CreateTestProduct())
	_, err := ledger.AddTransaction(helpers.CreateTestTransaction())
	require.NoError(t, err)
	handler := handlers.NewProductHandler(ledger, helpers.TestLogger())

	t.Run("lists_transactions_for_code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/P-001/transactions", nil)
		req.SetPathValue("code", "P-001")
		w := httptest.NewRecorder()
		handler.ProductTransactions(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			ProductCode  string               `json:"product_code"`
			Transactions []domain.Transaction `json:"transactions"`
			Total        int                  `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "P-001", response.ProductCode)
		assert.Equal(t, 1, response.Total)
	})

	t.Run("unknown_code_lists_empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/missing/transactions", nil)
		req.SetPathValue("code", "missing")
		w := httptest.NewRecorder()
		handler.ProductTransactions(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Transactions []domain.Transaction `json:"transactions"`
			Total        int                  `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 0, response.Total)
		assert.NotNil(t, response.Transactions)
	})
}
