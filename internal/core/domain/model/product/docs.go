// Package product provides the Product aggregate of the marketplace catalog,
// restricted to the slice the fulfillment workflow depends on: existence,
// stock, listing status, and category associations.
//
// Key business rules:
//   - Price must be positive; stock can never go negative
//   - A product carries at least one category at all times after creation;
//     category replacement swaps the full set and rejects an empty set
//   - Listing status is farmer/staff-initiated and independent of order status
//   - Deletion nullifies references held by order line items and feedback
//     (history survives) while category and production-area mappings are
//     removed outright
package product
