// internal/core/ports/auth.go
package ports

import (
	"github.com/smoradi/stockroom-be/internal/core/domain"
)

// Authenticator validates a username/password pair against the ledger's
// user collection and produces a session identity. The first matching
// user wins; a failed match returns domain.ErrNotAuthenticated.
type Authenticator interface {
	Authenticate(username, password string) (domain.Identity, error)
}
