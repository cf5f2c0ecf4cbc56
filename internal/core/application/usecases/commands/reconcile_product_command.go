package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReconcileProductCommandIsNotConstructed = errors.New(
	"ReconcileProductCommand must be created via NewReconcileProductCommand constructor",
)

// ReconcileProductCommand requests a recomputation of one product's derived
// amounts and status from its ledger. Operators use it to repair drift caused
// by out-of-band writes without waiting for the next scheduled audit.
type ReconcileProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcileProductCommand creates a command to reconcile the given product.
func NewReconcileProductCommand(productID kernel.UUID) (ReconcileProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return ReconcileProductCommand{}, err
	}

	return ReconcileProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileProductCommand) Validate() error {
	return c.guard.Validate(ErrReconcileProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being reconciled.
func (c ReconcileProductCommand) ProductID() kernel.UUID {
	return c.productID
}
