// internal/core/ports/ledger.go
package ports

import (
	"github.com/smoradi/stockroom-be/internal/core/domain"
)

// AdjustDirection is the direction of a manual one-unit stock adjustment
type AdjustDirection string

const (
	AdjustUp   AdjustDirection = "up"
	AdjustDown AdjustDirection = "down"
)

// Ledger defines the application port for the inventory ledger: the single
// authoritative store for products, transactions, and users, and the only
// writer of product stock. Implementations must serialize mutations so
// that concurrent callers observe each operation atomically.
//
// Query methods return value copies; callers never receive a mutable alias
// into ledger-owned state.
type Ledger interface {
	// Products
	AddProduct(p domain.Product) error
	UpdateProduct(code string, p domain.Product) error
	DeleteProduct(code string)
	ProductByCode(code string) (domain.Product, error)
	Products() []domain.Product

	// Transactions
	AddTransaction(t domain.Transaction) (domain.Transaction, error)
	AdjustStock(code string, dir AdjustDirection, recordedBy string) (domain.Product, error)
	Transactions() []domain.Transaction
	TransactionsByProduct(code string) []domain.Transaction

	// Users
	AddUser(u domain.User) error
	Users() []domain.User

	// Aggregates and persistence bracket
	Stats() domain.Stats
	Snapshot() domain.Snapshot
	Restore(s domain.Snapshot)
}
