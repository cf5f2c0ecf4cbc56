package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelProductCommandIsNotConstructed = errors.New(
	"CancelProductCommand must be created via NewCancelProductCommand constructor",
)

// CancelProductCommand represents the withdrawal of a product from the
// pipeline. A cancelled product keeps its ledger history, but reconciliation
// stops touching it.
type CancelProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelProductCommand creates a command to cancel the given product.
func NewCancelProductCommand(productID kernel.UUID) (CancelProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CancelProductCommand{}, err
	}

	return CancelProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelProductCommand) Validate() error {
	return c.guard.Validate(ErrCancelProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being cancelled.
func (c CancelProductCommand) ProductID() kernel.UUID {
	return c.productID
}
