package commands

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrCategoriesAreRequired = errors.New("at least one category is required")
	ErrUnitTypeIsRequired    = errors.New("unit type is required")
)

// CreateProductCommand lists a farmer's product in the catalog. Listings
// start pending until staff review.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	farmerID    kernel.UserID
	price       kernel.Money
	stock       int
	unitType    string
	imageRef    string
	categoryIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a product listing command. At least one
// category is required so the catalog invariant holds from the first write.
func NewCreateProductCommand(
	productID kernel.UUID,
	farmerID kernel.UserID,
	price kernel.Money,
	stock int,
	unitType string,
	imageRef string,
	categoryIDs []kernel.UUID,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		imageRef: imageRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setFarmerID(farmerID),
		cmd.setPrice(price),
		cmd.setStock(stock),
		cmd.setUnitType(unitType),
		cmd.setCategoryIDs(categoryIDs),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the client-generated product identifier.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// FarmerID returns the selling farmer's identity.
func (c CreateProductCommand) FarmerID() kernel.UserID {
	return c.farmerID
}

// Price returns the listing price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial stock level.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

// UnitType returns the selling unit.
func (c CreateProductCommand) UnitType() string {
	return c.unitType
}

// ImageRef returns the external image reference, possibly empty.
func (c CreateProductCommand) ImageRef() string {
	return c.imageRef
}

// CategoryIDs returns the initial category set.
func (c CreateProductCommand) CategoryIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.categoryIDs))
	copy(ids, c.categoryIDs)
	return ids
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setFarmerID(farmerID kernel.UserID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}

	c.farmerID = farmerID
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValidationErrorWithCause(
			"stock", fmt.Errorf("%d is negative", stock))
	}

	c.stock = stock
	return nil
}

func (c *CreateProductCommand) setUnitType(unitType string) error {
	if unitType == "" {
		return ErrUnitTypeIsRequired
	}

	c.unitType = unitType
	return nil
}

func (c *CreateProductCommand) setCategoryIDs(categoryIDs []kernel.UUID) error {
	if len(categoryIDs) == 0 {
		return ErrCategoriesAreRequired
	}

	for _, id := range categoryIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.categoryIDs = make([]kernel.UUID, len(categoryIDs))
	copy(c.categoryIDs, categoryIDs)
	return nil
}
