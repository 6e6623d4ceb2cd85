// internal/handlers/auth.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/core/ports"
)

// AuthHandler handles login requests
type AuthHandler struct {
	auth   ports.Authenticator
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth ports.Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger.With(slog.String("handler", "auth")),
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			respondError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.logger.ErrorContext(ctx, "authentication error",
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Authentication failed")
		return
	}

	respondJSON(w, http.StatusOK, identity)
}
