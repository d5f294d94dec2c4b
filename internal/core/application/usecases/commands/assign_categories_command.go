package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrAssignCategoriesCommandIsNotConstructed = errors.New(
	"AssignCategoriesCommand must be created via NewAssignCategoriesCommand constructor",
)

// AssignCategoriesCommand replaces a product's full category set. Partial
// add/remove is not offered; callers send the complete set they want.
type AssignCategoriesCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	categoryIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCategoriesCommand creates a category assignment command. An empty
// set is rejected up front; a product always carries at least one category.
func NewAssignCategoriesCommand(productID kernel.UUID, categoryIDs []kernel.UUID) (AssignCategoriesCommand, error) {
	cmd := AssignCategoriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setCategoryIDs(categoryIDs),
	); err != nil {
		return AssignCategoriesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCategoriesCommand) Validate() error {
	return c.guard.Validate(ErrAssignCategoriesCommandIsNotConstructed)
}

// ProductID returns the product whose categories are replaced.
func (c AssignCategoriesCommand) ProductID() kernel.UUID {
	return c.productID
}

// CategoryIDs returns the replacement category set.
func (c AssignCategoriesCommand) CategoryIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.categoryIDs))
	copy(ids, c.categoryIDs)
	return ids
}

func (c *AssignCategoriesCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AssignCategoriesCommand) setCategoryIDs(categoryIDs []kernel.UUID) error {
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
