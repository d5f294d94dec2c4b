// Package order provides the Order aggregate root of the marketplace
// fulfillment workflow.
//
// The package includes:
//   - Order: the aggregate root owning the order lifecycle and its line items
//   - LineItem: a (product, quantity, price-snapshot) tuple belonging to one order
//   - Status: the state machine enforcing valid order status transitions
//
// Key business rules:
//   - An order must reference a valid consumer and carry at least one line item
//   - Line items are immutable once the order leaves pending; the unit price is
//     captured at order time and never re-read from the product
//   - Status follows pending -> processing -> ready -> completed, with
//     cancellation allowed from pending and processing only
//   - Re-applying the current status succeeds without side effects
//   - Deletion is permitted only while the order is pending
//
// The package follows the same aggregate conventions as the rest of the domain
// model: constructor validation, restore functions for persistence, and
// encapsulated state behind accessor methods.
package order
