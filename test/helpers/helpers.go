// test/helpers/helpers.go
package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/internal/pkg/config"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-stockroom",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Storage: config.StorageConfig{
			DataDir:          "testdata",
			ProductsFile:     "products.xlsx",
			TransactionsFile: "transactions.xlsx",
			UsersFile:        "users.xlsx",
			AutosaveInterval: 0,
			SaveOnShutdown:   false,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
		},
		Server: config.ServerConfig{
			Host:              "localhost",
			Port:              "8080",
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			EnableHealthCheck: true,
		},
	}
}

// CreateTestProduct creates a test product
func CreateTestProduct(overrides ...func(*domain.Product)) domain.Product {
	p := domain.Product{
		Code:         "P-001",
		Name:         "Copier Paper A4",
		Category:     "Office Supplies",
		Capacity:     500,
		CurrentStock: 120,
	}

	for _, override := range overrides {
		override(&p)
	}

	return p
}

// CreateTestProducts creates multiple test products with distinct codes
func CreateTestProducts(count int) []domain.Product {
	categories := []string{"Office Supplies", "Electronics", "Cleaning", "Furniture"}

	products := make([]domain.Product, count)
	for i := 0; i < count; i++ {
		products[i] = CreateTestProduct(func(p *domain.Product) {
			p.Code = fmt.Sprintf("P-%03d", i+1)
			p.Name = fmt.Sprintf("Test Product %d", i+1)
			p.Category = categories[i%len(categories)]
			p.Capacity = 100 + i*50
			p.CurrentStock = 10 + i*5
		})
	}

	return products
}

// CreateTestTransaction creates a test transaction
func CreateTestTransaction(overrides ...func(*domain.Transaction)) domain.Transaction {
	t := domain.Transaction{
		ID:          uuid.New(),
		ProductCode: "P-001",
		Type:        domain.TypeIn,
		Quantity:    10,
		Date:        time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		RecordedBy:  "clerk",
	}

	for _, override := range overrides {
		override(&t)
	}

	return t
}

// CreateTestUser creates a test user
func CreateTestUser(overrides ...func(*domain.User)) domain.User {
	u := domain.User{
		Username: "clerk",
		Password: "letmein",
		Role:     domain.RoleStaff,
	}

	for _, override := range overrides {
		override(&u)
	}

	return u
}

// CompareProducts compares two products for testing
func CompareProducts(t *testing.T, expected, actual domain.Product) {
	t.Helper()

	require.Equal(t, expected.Code, actual.Code)
	require.Equal(t, expected.Name, actual.Name)
	require.Equal(t, expected.Category, actual.Category)
	require.Equal(t, expected.Capacity, actual.Capacity)
	require.Equal(t, expected.CurrentStock, actual.CurrentStock)
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
