// internal/handlers/products.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/core/ports"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	ledger ports.Ledger
	logger *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(ledger ports.Ledger, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		ledger: ledger,
		logger: logger.With(slog.String("handler", "products")),
	}
}

// ProductView is a product plus its derived stock status
type ProductView struct {
	domain.Product
	Status domain.StockStatus `json:"status"`
}

// ListProducts handles GET /api/v1/products. An optional ?search= term
// filters case-insensitively over code, name, and category.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))

	products := h.ledger.Products()
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		if search != "" {
			target := strings.ToLower(p.Code + " " + p.Name + " " + p.Category)
			if !strings.Contains(target, search) {
				continue
			}
		}
		views = append(views, ProductView{Product: p, Status: p.Status()})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"products": views,
		"total":    len(views),
	})
}

// GetProduct handles GET /api/v1/products/{code}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	p, err := h.ledger.ProductByCode(code)
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	respondJSON(w, http.StatusOK, ProductView{Product: p, Status: p.Status()})
}

// CreateProduct handles POST /api/v1/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := req.ToDomain()
	if err := h.ledger.AddProduct(p); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateCode):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.ErrorContext(ctx, "failed to create product",
				slog.String("error", err.Error()))
			respondError(w, http.StatusInternalServerError, "Failed to create product")
		}
		return
	}

	respondJSON(w, http.StatusCreated, ProductView{Product: p, Status: p.Status()})
}

// UpdateProduct handles PUT /api/v1/products/{code}. The update replaces
// the product wholesale; when the request omits current_stock it is
// carried over from the pre-edit product.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := r.PathValue("code")

	existing, err := h.ledger.ProductByCode(code)
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated := domain.Product{
		Code:         code,
		Name:         strings.TrimSpace(req.Name),
		Category:     strings.TrimSpace(req.Category),
		Capacity:     req.Capacity,
		CurrentStock: existing.CurrentStock,
	}
	if req.Code != "" {
		updated.Code = strings.TrimSpace(req.Code)
	}
	if req.CurrentStock != nil {
		updated.CurrentStock = *req.CurrentStock
	}

	if err := h.ledger.UpdateProduct(code, updated); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateCode):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.ErrorContext(ctx, "failed to update product",
				slog.String("code", code),
				slog.String("error", err.Error()))
			respondError(w, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}

	respondJSON(w, http.StatusOK, ProductView{Product: updated, Status: updated.Status()})
}

// DeleteProduct handles DELETE /api/v1/products/{code}. Deleting an
// absent code is not an error; the outcome is the same.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	h.ledger.DeleteProduct(code)

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "deleted",
		"code":   code,
	})
}

// AdjustStock handles POST /api/v1/products/{code}/adjust: a manual
// one-unit stock adjustment recorded as a synthetic transaction.
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := r.PathValue("code")

	var req AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.ledger.AdjustStock(code, ports.AdjustDirection(req.Direction), "")
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.ErrorContext(ctx, "failed to adjust stock",
				slog.String("code", code),
				slog.String("error", err.Error()))
			respondError(w, http.StatusInternalServerError, "Failed to adjust stock")
		}
		return
	}

	respondJSON(w, http.StatusOK, ProductView{Product: p, Status: p.Status()})
}

// ProductTransactions handles GET /api/v1/products/{code}/transactions
func (h *ProductHandler) ProductTransactions(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	transactions := h.ledger.TransactionsByProduct(code)
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"product_code": code,
		"transactions": transactions,
		"total":        len(transactions),
	})
}
