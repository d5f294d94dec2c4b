package order

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineItemsAreRequired is returned when creating an order without line items.
	ErrLineItemsAreRequired = errs.NewValidationError("line items")
)

// Order represents a consumer's purchase request. It is the aggregate root
// that owns the order lifecycle and the ordered collection of line items.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and consumer reference
//   - Must carry at least one line item
//   - Line items are immutable once the order leaves pending; only the
//     product reference may be nullified when a product is deleted
//   - Status transitions follow the table in the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id            kernel.UUID
	consumerID    kernel.UserID
	status        Status
	orderDate     time.Time
	pickupDetails string
	items         []LineItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a pending order at checkout time.
//
// Parameters:
//   - id: client-generated identifier for the order
//   - consumerID: the purchasing consumer's validated identity
//   - pickupDetails: free-text handoff instructions, may be empty
//   - items: at least one validated line item
//
// The order date is captured as the current UTC time.
func NewOrder(id kernel.UUID, consumerID kernel.UserID, pickupDetails string, items []LineItem) (*Order, error) {
	o := &Order{
		status:        Pending,
		orderDate:     time.Now().UTC(),
		pickupDetails: pickupDetails,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setConsumerID(consumerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status,
// order date, and line items. Used by repositories only.
func RestoreOrder(
	id kernel.UUID,
	consumerID kernel.UserID,
	status Status,
	orderDate time.Time,
	pickupDetails string,
	items []LineItem,
) (*Order, error) {
	o := &Order{
		orderDate:     orderDate,
		pickupDetails: pickupDetails,
		isConstructed: true,
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if err := errors.Join(
		o.setID(id),
		o.setConsumerID(consumerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ConsumerID returns the purchasing consumer's identity.
func (o *Order) ConsumerID() kernel.UserID {
	return o.consumerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns the checkout timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// PickupDetails returns the free-text handoff instructions.
func (o *Order) PickupDetails() string {
	return o.pickupDetails
}

// Items returns a copy of the line items. The slice is defensive; line items
// themselves are immutable value objects.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the sum of line-item price-snapshot times quantity.
// This is the only order total the system reports; it is computed, never
// stored, so it always matches the line items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

// TransitionTo moves the order to newStatus.
//
// Re-applying the current status returns (false, nil): a success with no side
// effects, no notification, and no persistence change. Any move the state
// machine forbids returns an InvalidTransitionError.
//
// Returns:
//   - changed: true when the status actually moved
//   - error: the transition failure, if any
func (o *Order) TransitionTo(newStatus Status) (bool, error) {
	if err := newStatus.Validate(); err != nil {
		return false, err
	}
	if o.status == newStatus {
		return false, nil
	}

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return false, err
	}

	o.status = next
	return true, nil
}

// HoldsDecrementedStock reports whether product stock decremented at checkout
// has not yet been consumed or returned. Cancellation from such a state must
// restore the stock.
func (o *Order) HoldsDecrementedStock() bool {
	return o.status == Pending || o.status == Processing
}

// CanBeDeleted reports whether physical deletion is permitted.
// Only pending orders may be deleted; the deletion cascades to line items.
func (o *Order) CanBeDeleted() bool {
	return o.status == Pending
}

// NullifyProduct clears the product reference on every line item pointing at
// productID. Quantities and price snapshots are kept so historical totals are
// unaffected. Returns the number of line items touched.
func (o *Order) NullifyProduct(productID kernel.UUID) int {
	nullified := 0
	for i, item := range o.items {
		if item.productID != nil && item.productID.IsEqual(productID) {
			o.items[i].productID = nil
			nullified++
		}
	}
	return nullified
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setConsumerID(consumerID kernel.UserID) error {
	if err := consumerID.Validate(); err != nil {
		return err
	}
	o.consumerID = consumerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrLineItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
