// Package pickup provides the Pickup aggregate: the physical handoff record
// optionally associated with one order.
//
// The package includes:
//   - Pickup: the aggregate root owning the handoff lifecycle and driver link
//   - Status: the deliberately permissive transition policy
//
// Key business rules:
//   - A pickup references at most one order, and an order has at most one pickup
//   - Driver assignment requires the driver to be available at assignment time
//     (checked transactionally by the assigning command, not here)
//   - Status transitions are validated against an explicit allow-list rather
//     than a linear machine: staff may revert a status, so any listed value is
//     reachable from any other. The policy lives in a single validator so it
//     can be tightened later without touching call sites.
//   - The assigned status is set only by driver assignment and is not reachable
//     through the transition operation
//   - Pickups in a non-initial state are deleted only with an explicit staff
//     override
package pickup
