// Package kernel provides shared value objects used across the marketplace
// domain model.
//
// Identities come in two forms. Entities owned by this core (orders, pickups,
// products, categories) use UUID, generated client-side at creation time.
// Actors supplied by the external auth collaborator (consumers, farmers,
// drivers) use UserID, a validated positive integer identity.
//
// Money is the immutable price value object used for product prices and the
// per-line-item price snapshots captured at order time.
//
// All value objects are immutable and validate on construction; zero values
// fail Validate.
package kernel
