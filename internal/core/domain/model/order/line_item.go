package order

import (
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errs.NewValidationError(
	"line item must be created via NewLineItem or RestoreLineItem")

// LineItem is a (product, quantity, price-snapshot) tuple belonging to one
// order. The unit price is captured at order time and never re-read from the
// product. The product reference becomes nil when the product is later
// deleted; the quantity and price snapshot survive so historical totals stay
// intact.
type LineItem struct {
	productID *kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for a live product reference.
// Quantity must be positive and the unit price must be a constructed Money.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValidationErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: &productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreLineItem reconstructs a line item from persistence.
// A nil productID is legal here: it marks a product deleted after the sale.
func RestoreLineItem(productID *kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return LineItem{}, err
		}
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValidationErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the referenced product, or nil when the product has been
// deleted since the order was placed.
func (li LineItem) ProductID() *kernel.UUID {
	return li.productID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price snapshot captured at order time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Total returns quantity times the unit price snapshot.
func (li LineItem) Total() float64 {
	return li.unitPrice.MultiplyBy(li.quantity)
}

// Validate ensures the line item was constructed properly.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}
