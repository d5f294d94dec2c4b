// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"farmmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches, so tests stay
// small and the compiler documents every command's write set.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PickupRepoFactory provides access to the pickup repository within a transaction.
	PickupRepoFactory interface {
		PickupRepository() ports.PickupRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderProductUoW manages transactions spanning orders and catalog stock.
	// Checkout decrements stock and cancellation restores it atomically with
	// the order write.
	OrderProductUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderProductUoWFactory creates new order and product unit of work instances.
	OrderProductUoWFactory interface {
		Create() OrderProductUoW
	}

	// PickupUoW manages transactions for pickup-only operations.
	PickupUoW interface {
		TxManager
		PickupRepoFactory
	}

	// PickupUoWFactory creates new pickup unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// OrderPickupUoW manages transactions spanning pickups and the orders they
	// reference, used when creating a pickup against an existing order.
	OrderPickupUoW interface {
		TxManager
		OrderRepoFactory
		PickupRepoFactory
	}

	// OrderPickupUoWFactory creates new order and pickup unit of work instances.
	OrderPickupUoWFactory interface {
		Create() OrderPickupUoW
	}

	// PickupDriverUoW manages transactions spanning pickups and drivers:
	// assignment locks the driver row, and completion updates the driver's
	// record in the same transaction as the status change.
	PickupDriverUoW interface {
		TxManager
		PickupRepoFactory
		DriverRepoFactory
	}

	// PickupDriverUoWFactory creates new pickup and driver unit of work instances.
	PickupDriverUoWFactory interface {
		Create() PickupDriverUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
