// Package product provides domain entities and business logic for tracking
// goods through the fulfillment pipeline. It implements the Product aggregate
// root whose lifecycle status is derived from ledger quantities rather than
// mutated directly.
//
// The package includes:
//   - Product: The aggregate root holding the requested quantity and the
//     cached quantities aggregated from the ledger
//   - Status: The closed lifecycle enum Ordered -> Purchased -> Received -> Delivered,
//     plus the terminal Cancelled state
//   - DetermineStatus: A pure function mapping aggregated quantities to the
//     canonical status
//
// Key business rules:
//   - The cached quantities must equal the ledger sums at quiescent times
//   - Status may only advance when the prior stage's quantity threshold is met
//   - Status retreats when a previously satisfied threshold is no longer met
//   - Cancelled is sticky and never overridden by recomputation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package product
