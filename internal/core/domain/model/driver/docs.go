// Package driver provides the Driver aggregate of the marketplace driver
// registry.
//
// A driver is keyed by the user identity supplied by the external auth
// collaborator. The aggregate owns dispatch eligibility (availability),
// vehicle data, the completed-pickup counter, and the running rating average.
//
// Key business rules:
//   - Availability is one of available, busy, offline; nothing else
//   - Availability is never flipped automatically by pickup completion or
//     cancellation; it is an independent operation by design
//   - The rating is a running average of averages: each rated completion folds
//     the new rating into the previous average using the pre-increment
//     completion count. The denominator never decreases. This matches the
//     historical behavior of the system and is preserved exactly for
//     compatibility with existing stored ratings.
package driver
