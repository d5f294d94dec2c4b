package commands

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrNoProductChangesRequested = errors.New("no product changes requested")
)

// UpdateProductCommand changes a listing through an explicit allow-list of
// fields. Nil pointers mean "leave unchanged"; arbitrary field updates are
// not expressible, which is the point.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     *kernel.Money
	stock     *int
	status    *product.Status
	unitType  *string
	imageRef  *string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a product update command. At least one
// field must be set.
func NewUpdateProductCommand(
	productID kernel.UUID,
	price *kernel.Money,
	stock *int,
	status *product.Status,
	unitType *string,
	imageRef *string,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		imageRef: imageRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setPrice(price),
		cmd.setStock(stock),
		cmd.setStatus(status),
		cmd.setUnitType(unitType),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	if price == nil && stock == nil && status == nil && unitType == nil && imageRef == nil {
		return UpdateProductCommand{}, ErrNoProductChangesRequested
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Price returns the new price, or nil to leave it unchanged.
func (c UpdateProductCommand) Price() *kernel.Money {
	return c.price
}

// Stock returns the corrected stock level, or nil to leave it unchanged.
func (c UpdateProductCommand) Stock() *int {
	return c.stock
}

// Status returns the new listing status, or nil to leave it unchanged.
func (c UpdateProductCommand) Status() *product.Status {
	return c.status
}

// UnitType returns the new selling unit, or nil to leave it unchanged.
func (c UpdateProductCommand) UnitType() *string {
	return c.unitType
}

// ImageRef returns the new image reference, or nil to leave it unchanged.
func (c UpdateProductCommand) ImageRef() *string {
	return c.imageRef
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setPrice(price *kernel.Money) error {
	if price != nil {
		if err := price.Validate(); err != nil {
			return err
		}
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setStock(stock *int) error {
	if stock != nil && *stock < 0 {
		return errs.NewValidationErrorWithCause(
			"stock", fmt.Errorf("%d is negative", *stock))
	}

	c.stock = stock
	return nil
}

func (c *UpdateProductCommand) setStatus(status *product.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *UpdateProductCommand) setUnitType(unitType *string) error {
	if unitType != nil && *unitType == "" {
		return ErrUnitTypeIsRequired
	}

	c.unitType = unitType
	return nil
}
