// internal/core/domain/errors.go
package domain

import "errors"

// Sentinel errors shared across the ledger and its adapters. Callers match
// with errors.Is; the wrapped message carries field-level detail.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrDuplicateCode     = errors.New("product code already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotAuthenticated  = errors.New("not authenticated")
)
