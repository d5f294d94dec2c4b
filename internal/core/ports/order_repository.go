// Package ports defines the contracts between the marketplace core and its
// infrastructure adapters: per-aggregate repositories, the unit of work, and
// the notification dispatcher. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their line items.
type OrderRepository interface {
	// Add persists a new order aggregate with all its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and cascades to its line items.
	// Callers must check the aggregate's deletion policy first.
	Delete(ctx context.Context, id kernel.UUID) error

	// NullifyProductReferences clears the product reference on every line
	// item pointing at productID, across all orders, preserving quantities
	// and price snapshots. Returns the number of line items touched.
	// Used by product deletion so purchase history survives.
	NullifyProductReferences(ctx context.Context, productID kernel.UUID) (int64, error)
}
