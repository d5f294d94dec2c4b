package commands

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// OrderItem is one requested (product, quantity) pair at checkout. The unit
// price is not part of the request; it is snapshotted from the catalog inside
// the checkout transaction.
type OrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a consumer's checkout request: the order
// identity, the buyer, optional handoff instructions, and the requested items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), consumerID, "stall 12", items)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	consumerID    kernel.UserID
	pickupDetails string
	items         []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. Requires a valid order ID
// and consumer, and at least one item with a positive quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	consumerID kernel.UserID,
	pickupDetails string,
	items []OrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		pickupDetails: pickupDetails,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setConsumerID(consumerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the client-generated order identifier.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ConsumerID returns the purchasing consumer's identity.
func (c CreateOrderCommand) ConsumerID() kernel.UserID {
	return c.consumerID
}

// PickupDetails returns the free-text handoff instructions.
func (c CreateOrderCommand) PickupDetails() string {
	return c.pickupDetails
}

// Items returns the requested items.
func (c CreateOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setConsumerID(consumerID kernel.UserID) error {
	if err := consumerID.Validate(); err != nil {
		return err
	}

	c.consumerID = consumerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValidationErrorWithCause(
				"quantity", fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
