// internal/core/domain/product_test.go
package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smoradi/stockroom-be/internal/core/domain"
)

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name          string
		product       domain.Product
		expectedError bool
		errorContains string
	}{
		{
			name: "valid_product",
			product: domain.Product{
				Code:         "P-001",
				Name:         "Copier Paper A4",
				Category:     "Office Supplies",
				Capacity:     500,
				CurrentStock: 120,
			},
			expectedError: false,
		},
		{
			name: "valid_without_category",
			product: domain.Product{
				Code:     "P-002",
				Name:     "Stapler",
				Capacity: 20,
			},
			expectedError: false,
		},
		{
			name: "missing_code",
			product: domain.Product{
				Name:     "Stapler",
				Capacity: 20,
			},
			expectedError: true,
			errorContains: "code is required",
		},
		{
			name: "missing_name",
			product: domain.Product{
				Code:     "P-003",
				Capacity: 20,
			},
			expectedError: true,
			errorContains: "name is required",
		},
		{
			name: "negative_capacity",
			product: domain.Product{
				Code:     "P-004",
				Name:     "Stapler",
				Capacity: -1,
			},
			expectedError: true,
			errorContains: "capacity cannot be negative",
		},
		{
			name: "negative_stock",
			product: domain.Product{
				Code:         "P-005",
				Name:         "Stapler",
				Capacity:     20,
				CurrentStock: -3,
			},
			expectedError: true,
			errorContains: "current_stock cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()

			if tt.expectedError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProduct_Status(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		capacity int
		expected domain.StockStatus
	}{
		{name: "zero_stock_is_empty", stock: 0, capacity: 100, expected: domain.StockEmpty},
		{name: "negative_stock_is_empty", stock: -5, capacity: 100, expected: domain.StockEmpty},
		{name: "below_ten_percent_is_low", stock: 9, capacity: 100, expected: domain.StockLow},
		{name: "exactly_ten_percent_is_normal", stock: 10, capacity: 100, expected: domain.StockNormal},
		{name: "mid_range_is_normal", stock: 50, capacity: 100, expected: domain.StockNormal},
		{name: "exactly_ninety_percent_is_normal", stock: 90, capacity: 100, expected: domain.StockNormal},
		{name: "above_ninety_percent_is_full", stock: 91, capacity: 100, expected: domain.StockFull},
		{name: "over_capacity_is_full", stock: 130, capacity: 100, expected: domain.StockFull},
		{name: "zero_capacity_with_stock_is_full", stock: 1, capacity: 0, expected: domain.StockFull},
		{name: "zero_capacity_zero_stock_is_empty", stock: 0, capacity: 0, expected: domain.StockEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Product{
				Code:         "P-001",
				Name:         "Test",
				Capacity:     tt.capacity,
				CurrentStock: tt.stock,
			}

			assert.Equal(t, tt.expected, p.Status())
		})
	}
}
