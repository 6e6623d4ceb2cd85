// internal/core/domain/product.go
package domain

import "fmt"

// StockStatus classifies a product's stock level relative to its capacity
type StockStatus string

// Stock status constants
const (
	StockEmpty  StockStatus = "empty"
	StockLow    StockStatus = "low"
	StockFull   StockStatus = "full"
	StockNormal StockStatus = "normal"
)

// Product represents a single stocked product. Code is the unique key
// across the live product set.
type Product struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	Capacity     int    `json:"capacity"`
	CurrentStock int    `json:"current_stock"`
}

// Validate performs domain validation on the product
func (p *Product) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("%w: code is required", ErrValidation)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.Capacity < 0 {
		return fmt.Errorf("%w: capacity cannot be negative", ErrValidation)
	}
	if p.CurrentStock < 0 {
		return fmt.Errorf("%w: current_stock cannot be negative", ErrValidation)
	}
	return nil
}

// Status reports the stock level band. Products under 10% of capacity are
// low, over 90% full. A zero-capacity product with stock counts as full.
func (p *Product) Status() StockStatus {
	switch {
	case p.CurrentStock <= 0:
		return StockEmpty
	case p.CurrentStock*10 < p.Capacity:
		return StockLow
	case p.CurrentStock*10 > p.Capacity*9:
		return StockFull
	default:
		return StockNormal
	}
}
