// internal/handlers/export.go
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/smoradi/stockroom-be/internal/adapters/xlsxstore"
	"github.com/smoradi/stockroom-be/internal/core/ports"
)

// ExportHandler serves spreadsheet downloads of the ledger's collections
// and the explicit save operation.
type ExportHandler struct {
	ledger ports.Ledger
	store  ports.SnapshotStore
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(ledger ports.Ledger, store ports.SnapshotStore, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		ledger: ledger,
		store:  store,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportCollection handles GET /api/v1/export/{collection} where
// collection is products, transactions, or users. The download uses the
// same sheet layout the snapshot store persists, so an exported file can
// be dropped into the data directory as-is.
func (h *ExportHandler) ExportCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	collection := r.PathValue("collection")

	snap := h.ledger.Snapshot()

	var (
		file *xlsx.File
		err  error
	)
	switch collection {
	case "products":
		file, err = xlsxstore.ProductsWorkbook(snap.Products)
	case "transactions":
		file, err = xlsxstore.TransactionsWorkbook(snap.Transactions)
	case "users":
		file, err = xlsxstore.UsersWorkbook(snap.Users)
	default:
		respondError(w, http.StatusNotFound, "Unknown collection")
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build export workbook",
			slog.String("collection", collection),
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export workbook",
			slog.String("collection", collection),
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", collection, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(buffer.Bytes()); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "export completed",
		slog.String("collection", collection),
		slog.String("filename", filename))
}

// SaveSnapshot handles POST /api/v1/save: an explicit full save of the
// ledger to the backing spreadsheet files.
func (h *ExportHandler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap := h.ledger.Snapshot()
	if err := h.store.Save(ctx, snap); err != nil {
		h.logger.ErrorContext(ctx, "failed to save snapshot",
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to save snapshot")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":       "saved",
		"products":     len(snap.Products),
		"transactions": len(snap.Transactions),
		"users":        len(snap.Users),
	})
}
