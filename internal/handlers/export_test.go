// internal/handlers/export_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/smoradi/stockroom-be/internal/handlers"
	"github.com/smoradi/stockroom-be/test/helpers"
	"github.com/smoradi/stockroom-be/test/mocks"
)

func TestExportHandler_ExportCollection(t *testing.T) {
	ledger := seedLedger(t, helpers.CreateTestProducts(2)...)
	require.NoError(t, ledger.AddUser(helpers.CreateTestUser()))
	_, err := ledger.AddTransaction(helpers.CreateTestTransaction())
	require.NoError(t, err)

	handler := handlers.NewExportHandler(ledger, nil, helpers.TestLogger())

	tests := []struct {
		name         string
		collection   string
		expectedRows int // header plus data rows
	}{
		{name: "exports_products", collection: "products", expectedRows: 3},
		{name: "exports_transactions", collection: "transactions", expectedRows: 2},
		{name: "exports_users", collection: "users", expectedRows: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/export/"+tt.collection, nil)
			req.SetPathValue("collection", tt.collection)
			w := httptest.NewRecorder()
			handler.ExportCollection(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t,
				"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				w.Header().Get("Content-Type"))
			assert.Contains(t, w.Header().Get("Content-Disposition"), tt.collection)

			// The download must be a readable workbook
			file, err := xlsx.OpenBinary(w.Body.Bytes())
			require.NoError(t, err)
			require.Len(t, file.Sheets, 1)
			assert.Equal(t, tt.expectedRows, file.Sheets[0].MaxRow)
		})
	}

	t.Run("unknown_collection_is_not_found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/export/invoices", nil)
		req.SetPathValue("collection", "invoices")
		w := httptest.NewRecorder()
		handler.ExportCollection(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExportHandler_SaveSnapshot(t *testing.T) {
	t.Run("saves_and_reports_counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockSnapshotStore(ctrl)
		mockStore.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)

		ledger := seedLedger(t, helpers.CreateTestProducts(2)...)
		handler := handlers.NewExportHandler(ledger, mockStore, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/save", bytes.NewBufferString(""))
		w := httptest.NewRecorder()
		handler.SaveSnapshot(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "saved", response["status"])
		assert.EqualValues(t, 2, response["products"])
	})

	t.Run("store_failure_is_internal_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockSnapshotStore(ctrl)
		mockStore.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))

		handler := handlers.NewExportHandler(seedLedger(t), mockStore, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/save", bytes.NewBufferString(""))
		w := httptest.NewRecorder()
		handler.SaveSnapshot(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
