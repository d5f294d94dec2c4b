package errs

import (
	"fmt"
)

// ErrInsufficientStock is the sentinel for stock decrements that would go
// negative. It wraps ErrConflict, so errors.Is(err, ErrConflict) also holds.
var ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrConflict)

// InsufficientStockError reports a rejected stock decrement for a product.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the product.
// Available may be negative when the remaining quantity was not read back.
func NewInsufficientStockError(productID string, requested int, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	if e.Available < 0 {
		return fmt.Sprintf("%s: product %s: requested %d", ErrInsufficientStock, sanitize(e.ProductID), e.Requested)
	}
	return fmt.Sprintf("%s: product %s: requested %d, available %d",
		ErrInsufficientStock, sanitize(e.ProductID), e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
