// internal/core/domain/transaction.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the direction of a stock movement
type TransactionType string

// Transaction type constants
const (
	TypeIn  TransactionType = "IN"
	TypeOut TransactionType = "OUT"
)

// ParseTransactionType maps a stored label to a transaction type
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIn:
		return TypeIn, nil
	case TypeOut:
		return TypeOut, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", ErrValidation, s)
	}
}

// Transaction is an immutable stock movement event. Once accepted by the
// ledger it is never mutated or deleted; there is no reversal operation.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	ProductCode string          `json:"product_code"`
	Type        TransactionType `json:"transaction_type"`
	Quantity    int             `json:"quantity"`
	Date        time.Time       `json:"date"`
	RecordedBy  string          `json:"user"`
}

// Validate performs stateless validation on the transaction. Existence of
// the referenced product is checked by the ledger, which owns that state.
func (t *Transaction) Validate() error {
	if t.ProductCode == "" {
		return fmt.Errorf("%w: product_code is required", ErrValidation)
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if t.Type != TypeIn && t.Type != TypeOut {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, t.Type)
	}
	return nil
}

// StockDelta returns the signed effect of the transaction on stock
func (t *Transaction) StockDelta() int {
	if t.Type == TypeOut {
		return -t.Quantity
	}
	return t.Quantity
}
