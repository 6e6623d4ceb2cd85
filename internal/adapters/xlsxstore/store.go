// internal/adapters/xlsxstore/store.go

// Package xlsxstore persists ledger snapshots as three row-oriented
// spreadsheet files, one per collection, each with a fixed header row.
// Loads tolerate absent files; malformed content fails the load. Saves
// overwrite the target files with the full snapshot, no merge.
package xlsxstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx/v3"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/core/ports"
)

// Default file names inside the data directory
const (
	DefaultProductsFile     = "products.xlsx"
	DefaultTransactionsFile = "transactions.xlsx"
	DefaultUsersFile        = "users.xlsx"
)

// DateLayout is how transaction dates are written to the sheet
const DateLayout = "2006-01-02 15:04:05"

// dateLayouts are the formats accepted on load, newest convention first
var dateLayouts = []string{DateLayout, time.RFC3339, "2006-01-02"}

// Config holds store configuration
type Config struct {
	Dir              string
	ProductsFile     string
	TransactionsFile string
	UsersFile        string
}

// Store is the spreadsheet-backed snapshot store. A mutex serializes
// saves so concurrent callers cannot interleave partial writes to the
// same backing files.
type Store struct {
	cfg    Config
	mu     sync.Mutex
	logger *slog.Logger
}

// Statically assert that *Store implements the SnapshotStore port.
var _ ports.SnapshotStore = (*Store)(nil)

// NewStore creates a snapshot store rooted at cfg.Dir. Empty file names
// fall back to the defaults.
func NewStore(cfg Config, logger *slog.Logger) *Store {
	if cfg.ProductsFile == "" {
		cfg.ProductsFile = DefaultProductsFile
	}
	if cfg.TransactionsFile == "" {
		cfg.TransactionsFile = DefaultTransactionsFile
	}
	if cfg.UsersFile == "" {
		cfg.UsersFile = DefaultUsersFile
	}
	return &Store{
		cfg:    cfg,
		logger: logger.With(slog.String("adapter", "xlsxstore")),
	}
}

// Load reads all three collections. A collection whose file is absent
// comes back empty; anything else that goes wrong is an error.
func (s *Store) Load(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot

	products, err := s.loadProducts(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to load products: %w", err)
	}
	snap.Products = products

	transactions, err := s.loadTransactions(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	snap.Transactions = transactions

	users, err := s.loadUsers(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to load users: %w", err)
	}
	snap.Users = users

	s.logger.InfoContext(ctx, "snapshot loaded",
		slog.Int("products", len(snap.Products)),
		slog.Int("transactions", len(snap.Transactions)),
		slog.Int("users", len(snap.Users)))
	return snap, nil
}

// Save overwrites all three files with the snapshot's contents. Each file
// is written to a temp sibling first and renamed into place.
func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	pf, err := ProductsWorkbook(snap.Products)
	if err != nil {
		return err
	}
	if err := s.writeFile(pf, s.cfg.ProductsFile); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}

	tf, err := TransactionsWorkbook(snap.Transactions)
	if err != nil {
		return err
	}
	if err := s.writeFile(tf, s.cfg.TransactionsFile); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	uf, err := UsersWorkbook(snap.Users)
	if err != nil {
		return err
	}
	if err := s.writeFile(uf, s.cfg.UsersFile); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	s.logger.InfoContext(ctx, "snapshot saved",
		slog.Int("products", len(snap.Products)),
		slog.Int("transactions", len(snap.Transactions)),
		slog.Int("users", len(snap.Users)))
	return nil
}

func (s *Store) writeFile(file *xlsx.File, name string) error {
	path := filepath.Join(s.cfg.Dir, name)

	// Unique temp name so a crashed writer never leaves a sibling that a
	// later save would rename over
	tmpFile, err := os.CreateTemp(s.cfg.Dir, name+".*.tmp")
	if err != nil {
		return err
	}
	tmp := tmpFile.Name()
	tmpFile.Close()

	if err := file.Save(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// openSheet opens the first sheet of the workbook at path. A missing file
// returns (nil, nil): the caller's collection simply starts empty.
func (s *Store) openSheet(ctx context.Context, name string) (*xlsx.Sheet, error) {
	path := filepath.Join(s.cfg.Dir, name)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		s.logger.WarnContext(ctx, "file not found, starting empty",
			slog.String("path", path))
		return nil, nil
	}

	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if len(file.Sheets) == 0 {
		return nil, nil
	}
	return file.Sheets[0], nil
}

func (s *Store) loadProducts(ctx context.Context) ([]domain.Product, error) {
	sheet, err := s.openSheet(ctx, s.cfg.ProductsFile)
	if err != nil || sheet == nil {
		return nil, err
	}

	var products []domain.Product
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		rowIdx++
		if rowIdx == 1 {
			return nil // header
		}
		if rowIsEmpty(r) {
			return nil
		}

		capacity, err := cellInt(r, 3)
		if err != nil {
			return fmt.Errorf("row %d: bad capacity: %w", rowIdx, err)
		}
		stock, err := cellInt(r, 4)
		if err != nil {
			return fmt.Errorf("row %d: bad current stock: %w", rowIdx, err)
		}

		products = append(products, domain.Product{
			Code:         cellString(r, 0),
			Name:         cellString(r, 1),
			Category:     cellString(r, 2),
			Capacity:     capacity,
			CurrentStock: stock,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) loadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	sheet, err := s.openSheet(ctx, s.cfg.TransactionsFile)
	if err != nil || sheet == nil {
		return nil, err
	}

	var transactions []domain.Transaction
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		rowIdx++
		if rowIdx == 1 {
			return nil
		}
		if rowIsEmpty(r) {
			return nil
		}

		txType, err := domain.ParseTransactionType(cellString(r, 1))
		if err != nil {
			return fmt.Errorf("row %d: %w", rowIdx, err)
		}
		quantity, err := cellInt(r, 2)
		if err != nil {
			return fmt.Errorf("row %d: bad quantity: %w", rowIdx, err)
		}
		date, err := cellDate(r, 3)
		if err != nil {
			return fmt.Errorf("row %d: bad date: %w", rowIdx, err)
		}

		transactions = append(transactions, domain.Transaction{
			ID:          uuid.New(),
			ProductCode: cellString(r, 0),
			Type:        txType,
			Quantity:    quantity,
			Date:        date,
			RecordedBy:  cellString(r, 4),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *Store) loadUsers(ctx context.Context) ([]domain.User, error) {
	sheet, err := s.openSheet(ctx, s.cfg.UsersFile)
	if err != nil || sheet == nil {
		return nil, err
	}

	var users []domain.User
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		rowIdx++
		if rowIdx == 1 {
			return nil
		}
		if rowIsEmpty(r) {
			return nil
		}

		users = append(users, domain.User{
			Username: cellString(r, 0),
			Password: cellString(r, 1),
			Role:     cellString(r, 2),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Workbook builders. Save and the export endpoint share these so there is
// exactly one definition of each collection's columns.

// ProductsWorkbook builds a workbook with columns
// Code, Name, Category, Capacity, Current Stock.
func ProductsWorkbook(products []domain.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	addHeaderRow(sheet, "Code", "Name", "Category", "Capacity", "Current Stock")
	for _, p := range products {
		addRow(sheet, p.Code, p.Name, p.Category,
			strconv.Itoa(p.Capacity), strconv.Itoa(p.CurrentStock))
	}
	return file, nil
}

// TransactionsWorkbook builds a workbook with columns
// Product Code, Transaction Type, Quantity, Date, User.
func TransactionsWorkbook(transactions []domain.Transaction) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	addHeaderRow(sheet, "Product Code", "Transaction Type", "Quantity", "Date", "User")
	for _, t := range transactions {
		addRow(sheet, t.ProductCode, string(t.Type),
			strconv.Itoa(t.Quantity), t.Date.Format(DateLayout), t.RecordedBy)
	}
	return file, nil
}

// UsersWorkbook builds a workbook with columns Username, Password, Role.
// Passwords go to the sheet in clear text; that is the persisted format
// this store is contracted to keep compatible.
func UsersWorkbook(users []domain.User) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Users")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	addHeaderRow(sheet, "Username", "Password", "Role")
	for _, u := range users {
		addRow(sheet, u.Username, u.Password, u.Role)
	}
	return file, nil
}

func addHeaderRow(sheet *xlsx.Sheet, headers ...string) {
	row := sheet.AddRow()
	for _, h := range headers {
		cell := row.AddCell()
		cell.Value = h
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}
	// Column indexes are 1-based here
	for i := range headers {
		sheet.SetColWidth(i+1, i+1, 18)
	}
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
}

// Cell helpers

func cellString(r *xlsx.Row, i int) string {
	c := r.GetCell(i)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.String())
}

func cellInt(r *xlsx.Row, i int) (int, error) {
	s := cellString(r, i)
	if s == "" {
		return 0, nil
	}
	// Numeric cells can come back as floats ("30.000000")
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	return strconv.Atoi(s)
}

func cellDate(r *xlsx.Row, i int) (time.Time, error) {
	c := r.GetCell(i)
	if c == nil {
		return time.Time{}, fmt.Errorf("missing date cell")
	}
	if t, err := c.GetTime(false); err == nil {
		return t, nil
	}
	s := strings.TrimSpace(c.String())
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

func rowIsEmpty(r *xlsx.Row) bool {
	for i := 0; i < 5; i++ {
		if cellString(r, i) != "" {
			return false
		}
	}
	return true
}
