package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog slice
// the fulfillment workflow depends on.
type ProductRepository interface {
	// Add persists a new product with its category mappings.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, replacing the stored
	// category mapping set with the aggregate's current one.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product with its category associations.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementStock atomically reduces stock by qty as a conditional row
	// update, failing with InsufficientStockError when the result would be
	// negative. The implied row lock serializes concurrent orders for the
	// same product.
	DecrementStock(ctx context.Context, id kernel.UUID, qty int) error

	// RestoreStock atomically returns previously decremented stock.
	RestoreStock(ctx context.Context, id kernel.UUID, qty int) error

	// ReplaceCategories swaps the stored category mapping set in one
	// operation. The caller enforces the non-empty invariant.
	ReplaceCategories(ctx context.Context, id kernel.UUID, categoryIDs []kernel.UUID) error

	// Delete removes the product row together with its category and
	// production-area mappings, and nullifies product references held by
	// feedback rows. Line-item nullification is the order repository's
	// concern; the deleting command coordinates both in one transaction.
	Delete(ctx context.Context, id kernel.UUID) error
}
