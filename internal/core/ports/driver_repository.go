package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/driver"
	"farmmarket/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a newly registered driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by user identity.
	Get(ctx context.Context, userID kernel.UserID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver with the underlying row locked for the
	// remainder of the transaction. Assignment re-checks availability through
	// this method so two pickups cannot claim the same driver concurrently.
	GetForUpdate(ctx context.Context, userID kernel.UserID) (*driver.Driver, error)
}
