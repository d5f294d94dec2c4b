package product

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrCategoriesAreRequired is returned when a product would be left
	// without any category.
	ErrCategoriesAreRequired = errs.NewValidationError("categories")

	// ErrUnitTypeIsRequired is returned when creating a product without a unit type.
	ErrUnitTypeIsRequired = errs.NewValidationError("unit type")
)

// Product represents a farmer's listing in the catalog. The aggregate owns
// price, stock, listing status, and the category association set.
//
// Stock arithmetic here guards the in-memory aggregate; the repository layer
// additionally performs the decrement as a conditional row update so that
// concurrent orders against the same product serialize on the database row.
type Product struct {
	id          kernel.UUID
	farmerID    kernel.UserID
	price       kernel.Money
	stock       int
	status      Status
	unitType    string
	imageRef    string
	categoryIDs []kernel.UUID

	isConstructed bool
}

// NewProduct creates a pending listing with its initial category set.
// At least one category is required, matching the invariant that a product
// carries a category at all times after creation.
func NewProduct(
	id kernel.UUID,
	farmerID kernel.UserID,
	price kernel.Money,
	stock int,
	unitType string,
	imageRef string,
	categoryIDs []kernel.UUID,
) (*Product, error) {
	p := &Product{
		status:        StatusPending,
		imageRef:      imageRef,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setFarmerID(farmerID),
		p.setPrice(price),
		p.setStock(stock),
		p.setUnitType(unitType),
		p.setCategories(categoryIDs),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence. Used by repositories only.
func RestoreProduct(
	id kernel.UUID,
	farmerID kernel.UserID,
	price kernel.Money,
	stock int,
	status Status,
	unitType string,
	imageRef string,
	categoryIDs []kernel.UUID,
) (*Product, error) {
	p := &Product{
		imageRef:      imageRef,
		isConstructed: true,
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	p.status = status

	if err := errors.Join(
		p.setID(id),
		p.setFarmerID(farmerID),
		p.setPrice(price),
		p.setStock(stock),
		p.setUnitType(unitType),
		p.setCategories(categoryIDs),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// FarmerID returns the selling farmer's identity.
func (p *Product) FarmerID() kernel.UserID {
	return p.farmerID
}

// Price returns the current listing price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the remaining purchasable quantity.
func (p *Product) Stock() int {
	return p.stock
}

// Status returns the listing status.
func (p *Product) Status() Status {
	return p.status
}

// UnitType returns the selling unit, e.g. "kg" or "bundle".
func (p *Product) UnitType() string {
	return p.unitType
}

// ImageRef returns the stored image reference; storage is external.
func (p *Product) ImageRef() string {
	return p.imageRef
}

// CategoryIDs returns a copy of the category association set.
func (p *Product) CategoryIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(p.categoryIDs))
	copy(ids, p.categoryIDs)
	return ids
}

// DecrementStock reduces stock by qty. Fails with InsufficientStockError when
// the result would be negative; stock is left unchanged on failure.
func (p *Product) DecrementStock(qty int) error {
	if qty <= 0 {
		return errs.NewValidationErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	if qty > p.stock {
		return errs.NewInsufficientStockError(p.id.String(), qty, p.stock)
	}
	p.stock -= qty
	return nil
}

// RestoreStock returns previously decremented stock, e.g. on order cancellation.
func (p *Product) RestoreStock(qty int) error {
	if qty <= 0 {
		return errs.NewValidationErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	p.stock += qty
	return nil
}

// ReplaceCategories swaps the full category set in one operation.
// An empty replacement set violates the at-least-one-category invariant.
func (p *Product) ReplaceCategories(categoryIDs []kernel.UUID) error {
	return p.setCategories(categoryIDs)
}

// SetStatus updates the listing status. Farmer/staff-initiated; no machine
// beyond value validation.
func (p *Product) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

// SetPrice updates the listing price. Existing order line items keep their
// price snapshots.
func (p *Product) SetPrice(price kernel.Money) error {
	return p.setPrice(price)
}

// SetStock overwrites the stock level, used by explicit staff corrections.
func (p *Product) SetStock(stock int) error {
	return p.setStock(stock)
}

// SetUnitType updates the selling unit.
func (p *Product) SetUnitType(unitType string) error {
	return p.setUnitType(unitType)
}

// SetImageRef updates the stored image reference.
func (p *Product) SetImageRef(imageRef string) {
	p.imageRef = imageRef
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setFarmerID(farmerID kernel.UserID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	p.farmerID = farmerID
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValidationErrorWithCause(
			"stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

func (p *Product) setUnitType(unitType string) error {
	if unitType == "" {
		return ErrUnitTypeIsRequired
	}
	p.unitType = unitType
	return nil
}

func (p *Product) setCategories(categoryIDs []kernel.UUID) error {
	if len(categoryIDs) == 0 {
		return ErrCategoriesAreRequired
	}
	for _, id := range categoryIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	p.categoryIDs = make([]kernel.UUID, len(categoryIDs))
	copy(p.categoryIDs, categoryIDs)
	return nil
}
