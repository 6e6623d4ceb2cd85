// internal/core/services/auth.go
package services

import (
	"log/slog"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/core/ports"
)

// Auth validates credentials against the ledger's user collection. The
// comparison is an exact plaintext match and the first matching user
// wins, matching the persisted user file format. No hashing, no lockout.
type Auth struct {
	ledger ports.Ledger
	logger *slog.Logger
}

// Statically assert that *Auth implements the Authenticator port.
var _ ports.Authenticator = (*Auth)(nil)

// NewAuth creates a new authenticator backed by the ledger
func NewAuth(ledger ports.Ledger, logger *slog.Logger) *Auth {
	return &Auth{
		ledger: ledger,
		logger: logger.With(slog.String("service", "auth")),
	}
}

// Authenticate scans the user collection for an exact match on both
// fields and returns the matched identity, or domain.ErrNotAuthenticated.
func (a *Auth) Authenticate(username, password string) (domain.Identity, error) {
	if username == "" || password == "" {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}

	for _, u := range a.ledger.Users() {
		if u.Username == username && u.Password == password {
			a.logger.Info("login succeeded", slog.String("username", username))
			return domain.Identity{Username: u.Username, Role: u.Role}, nil
		}
	}

	a.logger.Warn("login failed", slog.String("username", username))
	return domain.Identity{}, domain.ErrNotAuthenticated
}
