// internal/handlers/users.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/core/ports"
)

// UserHandler handles user account HTTP requests. The user collection is
// append-only: accounts are created, never edited or removed.
type UserHandler struct {
	ledger ports.Ledger
	logger *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(ledger ports.Ledger, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		ledger: ledger,
		logger: logger.With(slog.String("handler", "users")),
	}
}

// UserView is a user without the password field
type UserView struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ListUsers handles GET /api/v1/users. Passwords never leave the ledger.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.ledger.Users()
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, UserView{Username: u.Username, Role: u.Role})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"users": views,
		"total": len(views),
	})
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	u := req.ToDomain()
	if err := h.ledger.AddUser(u); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.ErrorContext(ctx, "failed to create user",
				slog.String("username", req.Username),
				slog.String("error", err.Error()))
			respondError(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	respondJSON(w, http.StatusCreated, UserView{Username: u.Username, Role: u.Role})
}
