// internal/core/domain/user.go
package domain

import "fmt"

// Role constants. Roles are stored as free-text categories; these are the
// two values the application itself assigns.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is an application account. Username is the unique key across the
// live user set. Passwords are stored and compared in clear text; this is
// a known limitation of the persisted file format, not an invitation to
// hash here and silently break existing user files.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// Validate performs domain validation on the user
func (u *User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if u.Password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	return nil
}

// Identity is the session identity produced by authentication. It is
// consumed by callers and never stored in the ledger.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
