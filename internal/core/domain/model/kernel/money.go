package kernel

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed indicates a Money value that was not created
// through NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValidationError("money must be created via NewMoney")

// Money is the immutable price value object. Product prices must be positive,
// and order line items capture a Money snapshot at order time that is never
// re-read from the product afterwards.
type Money struct {
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value. The amount must be strictly positive.
func NewMoney(amount float64) (Money, error) {
	if amount <= 0 {
		return Money{}, errs.NewValidationErrorWithCause(
			"amount", fmt.Errorf("%v is not greater than 0", amount))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// Amount returns the raw monetary amount.
func (m Money) Amount() float64 {
	return m.amount
}

// MultiplyBy returns the total for the given quantity.
// Used when computing order totals from line-item snapshots.
func (m Money) MultiplyBy(quantity int) float64 {
	return m.amount * float64(quantity)
}

// IsEqual reports whether two Money values carry the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

// Validate returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
