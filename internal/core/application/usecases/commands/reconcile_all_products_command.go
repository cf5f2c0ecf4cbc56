package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrReconcileAllProductsCommandIsNotConstructed = errors.New(
	"ReconcileAllProductsCommand must be created via NewReconcileAllProductsCommand constructor",
)

// ReconcileAllProductsCommand requests a full sweep over every product. With
// FixDrift disabled the sweep only reports what drifted; with it enabled each
// drifted product is repaired in its own transaction.
type ReconcileAllProductsCommand struct { //nolint:recvcheck //using for validation
	fixDrift bool

	guard guard.ConstructorGuard
}

// NewReconcileAllProductsCommand creates a command to sweep all products.
func NewReconcileAllProductsCommand(fixDrift bool) (ReconcileAllProductsCommand, error) {
	return ReconcileAllProductsCommand{
		fixDrift: fixDrift,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileAllProductsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileAllProductsCommandIsNotConstructed)
}

// FixDrift reports whether drifted products should be repaired or only counted.
func (c ReconcileAllProductsCommand) FixDrift() bool {
	return c.fixDrift
}
