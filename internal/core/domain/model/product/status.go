package product

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a product in the fulfillment
// pipeline. Unlike a classic state machine, the status is not transitioned
// directly: it is recomputed from the quantities aggregated out of the
// ledger, so the same inputs always produce the same status.
//
// Pipeline stages:
//
//	Ordered ──> Purchased ──> Received ──> Delivered
//
// Each stage is gated by the previous stage's quantity threshold, and the
// status retreats when an earlier threshold stops being satisfied (for
// example after a refund). Cancelled sits outside the chain: it is a
// terminal state set explicitly by an operator and is never produced nor
// overridden by recomputation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status when a product is first registered.
	// None of the quantity thresholds is satisfied yet.
	Ordered

	// Purchased indicates the purchased quantity covers the requested amount.
	Purchased

	// Received indicates the goods have arrived at the warehouse: both the
	// purchased and received quantities cover the requested amount.
	Received

	// Delivered indicates the order is fully delivered to the customer:
	// purchased, received, and delivered quantities all cover the requested
	// amount.
	Delivered

	// Cancelled is a terminal state set by an operator. It is excluded from
	// automatic recomputation.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Ordered:   "Ordered",
		Purchased: "Purchased",
		Received:  "Received",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:   "Ordered",
		Purchased: "Purchased",
		Received:  "Received",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Ordered, Purchased, Received, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Ordered", "Purchased", "Received", "Delivered", or "Cancelled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the product lifecycle.
// Cancelled products are never recomputed.
func (s Status) IsTerminal() bool {
	return s == Cancelled
}

// DetermineStatus computes the canonical lifecycle status from the
// quantities aggregated out of the ledger. It is the algorithmic heart of
// the reconciliation engine: pure, total, and free of I/O, so identical
// inputs always yield an identical result.
//
// Parameters:
//   - purchased: net purchased quantity (bought minus refunded, clamped at 0)
//   - received: total received quantity
//   - delivered: total delivered quantity
//   - requested: target quantity set at product creation
//   - current: the product's current status, consulted only for the sticky
//     Cancelled rule
//
// Decision order, each stage gated by the previous thresholds:
//  1. delivered, received, and purchased all cover requested -> Delivered
//  2. received and purchased cover requested -> Received
//  3. purchased covers requested -> Purchased
//  4. otherwise -> Ordered
//
// A requested amount of zero (or less) never satisfies a threshold, so the
// result is Ordered. Cancelled is terminal: once current is Cancelled the
// function returns Cancelled regardless of quantities.
func DetermineStatus(purchased, received, delivered, requested int, current Status) Status {
	if current == Cancelled {
		return Cancelled
	}

	if requested <= 0 {
		return Ordered
	}

	purchasedCovered := purchased >= requested
	receivedCovered := received >= requested
	deliveredCovered := delivered >= requested

	switch {
	case deliveredCovered && receivedCovered && purchasedCovered:
		return Delivered
	case receivedCovered && purchasedCovered:
		return Received
	case purchasedCovered:
		return Purchased
	default:
		return Ordered
	}
}
