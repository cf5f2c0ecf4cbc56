package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRefundPurchaseCommandIsNotConstructed = errors.New(
		"RefundPurchaseCommand must be created via NewRefundPurchaseCommand constructor",
	)
	ErrQuantityIsNotPositive     = errors.New("quantity must be greater than 0")
	ErrPurchaseNotOwnedByProduct = errors.New("purchase does not belong to the product")
)

// RefundPurchaseCommand represents a supplier refund against an earlier
// purchase. The refund lowers the product's net purchased quantity, which
// can force the status back down the pipeline; that reversion is applied by
// the reconciliation in the same transaction.
type RefundPurchaseCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	purchaseID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewRefundPurchaseCommand creates a command to refund part of a purchase.
// Validates both identifiers and requires a positive quantity.
func NewRefundPurchaseCommand(productID, purchaseID kernel.UUID, quantity int) (RefundPurchaseCommand, error) {
	command := RefundPurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(productID, purchaseID),
		command.setQuantity(quantity),
	); err != nil {
		return RefundPurchaseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrRefundPurchaseCommandIsNotConstructed)
}

// ProductID returns the identifier of the product the purchase belongs to.
func (c RefundPurchaseCommand) ProductID() kernel.UUID {
	return c.productID
}

// PurchaseID returns the identifier of the purchase being refunded.
func (c RefundPurchaseCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}

// Quantity returns the quantity being refunded.
func (c RefundPurchaseCommand) Quantity() int {
	return c.quantity
}

func (c *RefundPurchaseCommand) setIDs(productID, purchaseID kernel.UUID) error {
	if err := errors.Join(productID.Validate(), purchaseID.Validate()); err != nil {
		return err
	}

	c.productID = productID
	c.purchaseID = purchaseID
	return nil
}

func (c *RefundPurchaseCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsNotPositive
	}

	c.quantity = quantity
	return nil
}
