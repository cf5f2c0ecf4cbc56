package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory methods. This ensures all
	// products are properly validated.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrProductIsCancelled is returned when a lifecycle operation is attempted
	// on a product that is already in the terminal Cancelled state.
	ErrProductIsCancelled = errors.New("product is cancelled")
)

// Product represents goods ordered by a customer and tracked through the
// fulfillment pipeline. It is the aggregate root whose cached quantity
// fields and status are derived from the ledger of purchase, receipt, and
// delivery events.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - The requested amount is positive and immutable after creation
//   - Cached amounts are non-negative and equal the ledger sums at quiescent times
//   - Status is recomputed via DetermineStatus, never advanced directly
//   - Can only be created through NewProduct or RestoreProduct
//
// The Product struct uses private fields to ensure encapsulation; the cached
// quantities mutate exclusively through ApplyRecount, which is invoked by
// the reconciliation service.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the human-readable description of the goods
	name string

	// amountRequested is the target quantity, set once at creation
	amountRequested int

	// amountPurchased caches the net purchased quantity from the ledger
	amountPurchased int

	// amountReceived caches the received quantity from the ledger
	amountReceived int

	// amountDelivered caches the delivered quantity from the ledger
	amountDelivered int

	// status is the derived lifecycle state
	status Status

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new Product in Ordered status with all cached
// quantities at zero. This is the only way to create a brand-new valid
// Product, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the product (must be valid UUID)
//   - name: Human-readable description (must be non-empty)
//   - amountRequested: Target quantity (must be positive)
//
// Returns:
//   - *Product: The created product if all validations pass
//   - error: Validation error if any parameter is invalid
func NewProduct(id kernel.UUID, name string, amountRequested int) (*Product, error) {
	p := &Product{
		status:        Ordered,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setAmountRequested(amountRequested),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence with its cached
// quantities and status. Used by repositories when loading aggregates; the
// restored state is validated the same way as a newly created one.
func RestoreProduct(
	id kernel.UUID,
	name string,
	amountRequested, amountPurchased, amountReceived, amountDelivered int,
	status Status,
) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setAmountRequested(amountRequested),
		p.setStatus(status),
		p.setAmounts(amountPurchased, amountReceived, amountDelivered),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the product is valid
//   - ErrProductIsNotConstructed if the product was not created via a constructor
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
// Products are considered equal if they have the same ID.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the human-readable description of the goods.
func (p *Product) Name() string {
	return p.name
}

// AmountRequested returns the target quantity set at creation.
func (p *Product) AmountRequested() int {
	return p.amountRequested
}

// AmountPurchased returns the cached net purchased quantity.
func (p *Product) AmountPurchased() int {
	return p.amountPurchased
}

// AmountReceived returns the cached received quantity.
func (p *Product) AmountReceived() int {
	return p.amountReceived
}

// AmountDelivered returns the cached delivered quantity.
func (p *Product) AmountDelivered() int {
	return p.amountDelivered
}

// Status returns the current derived lifecycle status.
func (p *Product) Status() Status {
	return p.status
}

// ApplyRecount replaces the cached quantities and status with freshly
// computed values. This is the single mutation path for the derived fields
// and is invoked by the reconciliation service after aggregating the ledger
// and calling DetermineStatus.
//
// Returns an error if any quantity is negative, if the status is invalid,
// or if the product is in the terminal Cancelled state (cancelled products
// are excluded from recomputation).
func (p *Product) ApplyRecount(purchased, received, delivered int, status Status) error {
	if p.status.IsTerminal() {
		return ErrProductIsCancelled
	}

	if err := errors.Join(
		p.setStatus(status),
		p.setAmounts(purchased, received, delivered),
	); err != nil {
		return err
	}

	return nil
}

// Cancel moves the product to the terminal Cancelled state. The cached
// quantities are left untouched; the ledger remains the source of truth
// should the cancellation policy ever allow a revival.
//
// Returns ErrProductIsCancelled if the product is already cancelled.
func (p *Product) Cancel() error {
	if p.status == Cancelled {
		return ErrProductIsCancelled
	}

	p.status = Cancelled
	return nil
}

// setID validates and sets the product's unique identifier.
// This is a private method used only during construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the product's description.
// This is a private method used only during construction.
func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setAmountRequested validates and sets the target quantity.
// The requested amount must be positive.
// This is a private method used only during construction.
func (p *Product) setAmountRequested(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amountRequested is invalid",
			fmt.Errorf("%d is not greater than 0", amount),
		)
	}
	p.amountRequested = amount
	return nil
}

// setStatus validates and sets the lifecycle status.
func (p *Product) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

// setAmounts validates and sets the cached ledger quantities.
// Each quantity must be non-negative; the purchase aggregation clamps the
// net sum at zero before it reaches the aggregate.
func (p *Product) setAmounts(purchased, received, delivered int) error {
	for name, amount := range map[string]int{
		"amountPurchased": purchased,
		"amountReceived":  received,
		"amountDelivered": delivered,
	} {
		if amount < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				name+" is invalid",
				fmt.Errorf("%d is negative", amount),
			)
		}
	}

	p.amountPurchased = purchased
	p.amountReceived = received
	p.amountDelivered = delivered
	return nil
}
