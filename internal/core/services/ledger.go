// internal/core/services/ledger.go
package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/core/ports"
)

// ManualAdjustmentUser is the attribution recorded on transactions
// synthesized by one-unit stock adjustments.
const ManualAdjustmentUser = "manual adjustment"

// Ledger is the in-memory inventory ledger. It owns the authoritative
// collections of products, transactions, and users, and is the only
// writer of product stock: every stock change flows through
// AddTransaction, which applies the movement's effect exactly once.
//
// Collections keep insertion order, which is display-relevant. A single
// RWMutex serializes mutations; queries run concurrently and hand out
// value copies only.
type Ledger struct {
	mu           sync.RWMutex
	products     []domain.Product
	transactions []domain.Transaction
	users        []domain.User
	logger       *slog.Logger
}

// Statically assert that *Ledger implements the Ledger port.
var _ ports.Ledger = (*Ledger)(nil)

// NewLedger creates an empty ledger
func NewLedger(logger *slog.Logger) *Ledger {
	return &Ledger{
		logger: logger.With(slog.String("service", "ledger")),
	}
}

// AddProduct inserts a new product. Product codes are unique across the
// live product set; inserting an existing code fails with
// domain.ErrDuplicateCode instead of silently shadowing.
func (l *Ledger) AddProduct(p domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexOfProduct(p.Code) >= 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCode, p.Code)
	}

	l.products = append(l.products, p)
	l.logger.Info("product added",
		slog.String("code", p.Code),
		slog.String("name", p.Name))
	return nil
}

// UpdateProduct replaces the first product with a matching code wholesale,
// current stock included; callers that want stock preserved carry it over
// from the pre-edit product. Updating an absent code is a silent no-op.
// Renaming a product onto another live code is rejected.
func (l *Ledger) UpdateProduct(code string, p domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOfProduct(code)
	if i < 0 {
		l.logger.Debug("update for unknown product ignored", slog.String("code", code))
		return nil
	}
	if p.Code != code && l.indexOfProduct(p.Code) >= 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCode, p.Code)
	}

	l.products[i] = p
	l.logger.Info("product updated", slog.String("code", code))
	return nil
}

// DeleteProduct removes every product with a matching code. Transaction
// history for the code is kept. Deleting an absent code is a no-op.
func (l *Ledger) DeleteProduct(code string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.products[:0]
	removed := 0
	for _, p := range l.products {
		if p.Code == code {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	l.products = kept

	if removed > 0 {
		l.logger.Info("product deleted",
			slog.String("code", code),
			slog.Int("removed", removed))
	}
}

// ProductByCode returns a copy of the first product with a matching code,
// or domain.ErrNotFound.
func (l *Ledger) ProductByCode(code string) (domain.Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexOfProduct(code); i >= 0 {
		return l.products[i], nil
	}
	return domain.Product{}, fmt.Errorf("%w: product %s", domain.ErrNotFound, code)
}

// Products returns a copy of the product collection in insertion order
func (l *Ledger) Products() []domain.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Product, len(l.products))
	copy(out, l.products)
	return out
}

// AddTransaction validates and records a stock movement, then applies its
// effect to the referenced product's stock under the same lock. A
// movement against an unknown product is rejected; it can never be
// recorded without its stock effect. Stock is not clamped: an OUT
// movement may drive stock negative and an IN movement may exceed
// capacity.
//
// A zero ID and zero date are filled in at acceptance time. The returned
// transaction is the record as stored.
func (l *Ledger) AddTransaction(t domain.Transaction) (domain.Transaction, error) {
	if err := t.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOfProduct(t.ProductCode)
	if i < 0 {
		return domain.Transaction{}, fmt.Errorf("%w: transaction references unknown product %s",
			domain.ErrValidation, t.ProductCode)
	}

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}

	l.transactions = append(l.transactions, t)
	l.products[i].CurrentStock += t.StockDelta()

	l.logger.Info("transaction recorded",
		slog.String("id", t.ID.String()),
		slog.String("product_code", t.ProductCode),
		slog.String("type", string(t.Type)),
		slog.Int("quantity", t.Quantity),
		slog.Int("stock_after", l.products[i].CurrentStock))
	return t, nil
}

// AdjustStock performs a manual one-unit stock adjustment by recording a
// synthetic quantity-1 transaction, so the stock effect is applied
// exactly once through the normal movement path. Adjusting down at zero
// stock is rejected. The check and the movement happen under one write
// lock. Returns the product after the adjustment.
func (l *Ledger) AdjustStock(code string, dir ports.AdjustDirection, recordedBy string) (domain.Product, error) {
	var txType domain.TransactionType
	switch dir {
	case ports.AdjustUp:
		txType = domain.TypeIn
	case ports.AdjustDown:
		txType = domain.TypeOut
	default:
		return domain.Product{}, fmt.Errorf("%w: unknown adjust direction %q", domain.ErrValidation, dir)
	}

	if recordedBy == "" {
		recordedBy = ManualAdjustmentUser
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOfProduct(code)
	if i < 0 {
		return domain.Product{}, fmt.Errorf("%w: product %s", domain.ErrNotFound, code)
	}
	if dir == ports.AdjustDown && l.products[i].CurrentStock <= 0 {
		return domain.Product{}, fmt.Errorf("%w: stock for %s is already zero", domain.ErrValidation, code)
	}

	t := domain.Transaction{
		ID:          uuid.New(),
		ProductCode: code,
		Type:        txType,
		Quantity:    1,
		Date:        time.Now(),
		RecordedBy:  recordedBy,
	}
	l.transactions = append(l.transactions, t)
	l.products[i].CurrentStock += t.StockDelta()

	l.logger.Info("stock adjusted",
		slog.String("product_code", code),
		slog.String("direction", string(dir)),
		slog.Int("stock_after", l.products[i].CurrentStock))
	return l.products[i], nil
}

// Transactions returns a copy of the transaction log in insertion order
func (l *Ledger) Transactions() []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// TransactionsByProduct returns all transactions referencing the code, in
// insertion order. Unaffected by later product edits or deletion.
func (l *Ledger) TransactionsByProduct(code string) []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.Transaction
	for _, t := range l.transactions {
		if t.ProductCode == code {
			out = append(out, t)
		}
	}
	return out
}

// AddUser appends a new user account. Usernames are unique; inserting an
// existing username fails with domain.ErrDuplicateUsername instead of
// creating a shadowed duplicate. There is no update or delete path;
// the user collection is append-only.
func (l *Ledger) AddUser(u domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.users {
		if existing.Username == u.Username {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, u.Username)
		}
	}

	l.users = append(l.users, u)
	l.logger.Info("user added",
		slog.String("username", u.Username),
		slog.String("role", u.Role))
	return nil
}

// Users returns a copy of the user collection in insertion order
func (l *Ledger) Users() []domain.User {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.User, len(l.users))
	copy(out, l.users)
	return out
}

// Stats summarizes the ledger for the dashboard. A product counts as
// low-stock below ten units.
func (l *Ledger) Stats() domain.Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := domain.Stats{
		TotalProducts:     len(l.products),
		TotalTransactions: len(l.transactions),
		TotalUsers:        len(l.users),
	}
	for _, p := range l.products {
		s.TotalStock += p.CurrentStock
		s.TotalCapacity += p.Capacity
		if p.CurrentStock < 10 {
			s.LowStockProducts++
		}
	}
	return s
}

// Snapshot returns a full value copy of all three collections
func (l *Ledger) Snapshot() domain.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := domain.Snapshot{
		Products:     make([]domain.Product, len(l.products)),
		Transactions: make([]domain.Transaction, len(l.transactions)),
		Users:        make([]domain.User, len(l.users)),
	}
	copy(s.Products, l.products)
	copy(s.Transactions, l.transactions)
	copy(s.Users, l.users)
	return s
}

// Restore replaces the ledger's collections with the snapshot's contents.
// Stock values come straight from the snapshot; the transaction log is
// history, not a replay source, so restoring never re-applies stock
// effects. Legacy snapshots may contain transactions whose product no
// longer exists; they are kept as recorded history.
func (l *Ledger) Restore(s domain.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.products = make([]domain.Product, len(s.Products))
	l.transactions = make([]domain.Transaction, len(s.Transactions))
	l.users = make([]domain.User, len(s.Users))
	copy(l.products, s.Products)
	copy(l.transactions, s.Transactions)
	copy(l.users, s.Users)

	l.logger.Info("ledger restored from snapshot",
		slog.Int("products", len(l.products)),
		slog.Int("transactions", len(l.transactions)),
		slog.Int("users", len(l.users)))
}

// indexOfProduct returns the index of the first product with the code, or
// -1. Caller must hold the lock.
func (l *Ledger) indexOfProduct(code string) int {
	for i := range l.products {
		if l.products[i].Code == code {
			return i
		}
	}
	return -1
}
