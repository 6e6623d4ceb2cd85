// internal/handlers/transactions.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/core/ports"
)

// TransactionHandler handles transaction-related HTTP requests.
// Transactions are append-only: there is no update or delete route.
type TransactionHandler struct {
	ledger ports.Ledger
	logger *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledger ports.Ledger, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
		logger: logger.With(slog.String("handler", "transactions")),
	}
}

// ListTransactions handles GET /api/v1/transactions
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions := h.ledger.Transactions()
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"transactions": transactions,
		"total":        len(transactions),
	})
}

// CreateTransaction handles POST /api/v1/transactions. Acceptance applies
// the movement's stock effect atomically; a movement against an unknown
// product is rejected outright.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	recorded, err := h.ledger.AddTransaction(req.ToDomain())
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "failed to record transaction",
			slog.String("product_code", req.ProductCode),
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to record transaction")
		return
	}

	h.logger.InfoContext(ctx, "transaction created",
		slog.String("id", recorded.ID.String()),
		slog.String("product_code", recorded.ProductCode),
		slog.String("type", string(recorded.Type)),
		slog.Int("quantity", recorded.Quantity))

	respondJSON(w, http.StatusCreated, recorded)
}
