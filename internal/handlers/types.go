// internal/handlers/types.go
package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/smoradi/stockroom-be/internal/core/domain"
)

// validate is the shared request validator. Struct tags carry the
// stateless rules; anything that needs ledger state is checked by the
// ledger itself.
var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateProductRequest is the payload for POST /api/v1/products
type CreateProductRequest struct {
	Code         string `json:"code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category"`
	Capacity     int    `json:"capacity" validate:"gte=0"`
	CurrentStock int    `json:"current_stock" validate:"gte=0"`
}

// Validate checks the request against its struct tags
func (r *CreateProductRequest) Validate() error {
	return friendlyError(validate.Struct(r))
}

// ToDomain converts the request to a domain product
func (r *CreateProductRequest) ToDomain() domain.Product {
	return domain.Product{
		Code:         strings.TrimSpace(r.Code),
		Name:         strings.TrimSpace(r.Name),
		Category:     strings.TrimSpace(r.Category),
		Capacity:     r.Capacity,
		CurrentStock: r.CurrentStock,
	}
}

// UpdateProductRequest is the payload for PUT /api/v1/products/{code}.
// CurrentStock is optional: when omitted, the handler carries the stock
// over from the pre-edit product so an edit never silently resets it.
type UpdateProductRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category"`
	Capacity     int    `json:"capacity" validate:"gte=0"`
	CurrentStock *int   `json:"current_stock" validate:"omitempty,gte=0"`
}

// Validate checks the request against its struct tags
func (r *UpdateProductRequest) Validate() error {
	return friendlyError(validate.Struct(r))
}

// CreateTransactionRequest is the payload for POST /api/v1/transactions
type CreateTransactionRequest struct {
	ProductCode string `json:"product_code" validate:"required"`
	Type        string `json:"transaction_type" validate:"required,oneof=IN OUT"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Date        string `json:"date" validate:"omitempty"`
	User        string `json:"user"`
}

// Validate checks the request against its struct tags
func (r *CreateTransactionRequest) Validate() error {
	if err := friendlyError(validate.Struct(r)); err != nil {
		return err
	}
	if r.Date != "" {
		if _, err := time.Parse(time.RFC3339, r.Date); err != nil {
			return fmt.Errorf("date must be RFC3339")
		}
	}
	return nil
}

// ToDomain converts the request to a domain transaction. The ledger fills
// in the ID and, when the date was omitted, the acceptance time.
func (r *CreateTransactionRequest) ToDomain() domain.Transaction {
	t := domain.Transaction{
		ProductCode: strings.TrimSpace(r.ProductCode),
		Type:        domain.TransactionType(r.Type),
		Quantity:    r.Quantity,
		RecordedBy:  strings.TrimSpace(r.User),
	}
	if r.Date != "" {
		t.Date, _ = time.Parse(time.RFC3339, r.Date)
	}
	return t
}

// AdjustStockRequest is the payload for POST /api/v1/products/{code}/adjust
type AdjustStockRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// Validate checks the request against its struct tags
func (r *AdjustStockRequest) Validate() error {
	return friendlyError(validate.Struct(r))
}

// CreateUserRequest is the payload for POST /api/v1/users
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin staff"`
}

// Validate checks the request against its struct tags
func (r *CreateUserRequest) Validate() error {
	return friendlyError(validate.Struct(r))
}

// ToDomain converts the request to a domain user, defaulting to staff
func (r *CreateUserRequest) ToDomain() domain.User {
	role := r.Role
	if role == "" {
		role = domain.RoleStaff
	}
	return domain.User{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
		Role:     role,
	}
}

// LoginRequest is the payload for POST /api/v1/auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the request against its struct tags
func (r *LoginRequest) Validate() error {
	return friendlyError(validate.Struct(r))
}

// friendlyError rewrites validator's first field error into a message a
// client can show as-is
func friendlyError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "gte":
		return fmt.Errorf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Errorf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}
