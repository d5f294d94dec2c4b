package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/pickup"
)

// PickupRepository defines the persistence contract for pickup aggregates.
type PickupRepository interface {
	// Add persists a new pickup aggregate.
	Add(ctx context.Context, aggregate *pickup.Pickup) error

	// Update persists changes to an existing pickup aggregate.
	Update(ctx context.Context, aggregate *pickup.Pickup) error

	// Get retrieves a pickup by identifier.
	Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error)

	// GetByOrderID retrieves the pickup associated with an order.
	// Returns ObjectNotFoundError when the order has no pickup yet;
	// creation uses that to enforce the one-pickup-per-order rule.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*pickup.Pickup, error)

	// Delete removes a pickup record. Callers must check the aggregate's
	// deletion policy or hold an explicit staff override.
	Delete(ctx context.Context, id kernel.UUID) error
}
