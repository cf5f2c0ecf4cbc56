package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordPurchaseCommandIsNotConstructed = errors.New(
		"RecordPurchaseCommand must be created via NewRecordPurchaseCommand constructor",
	)
	ErrAmountIsNegative = errors.New("amount must not be negative")
)

// RecordPurchaseCommand represents a purchase made against a product:
// goods bought from a supplier on the customer's behalf. Recording the
// purchase and reconciling the product's status happen in one transaction.
type RecordPurchaseCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	purchaseID   kernel.UUID
	amountBought int

	guard guard.ConstructorGuard
}

// NewRecordPurchaseCommand creates a command to record a purchase event.
// Validates both identifiers and requires a non-negative bought amount.
func NewRecordPurchaseCommand(productID, purchaseID kernel.UUID, amountBought int) (RecordPurchaseCommand, error) {
	command := RecordPurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(productID, purchaseID),
		command.setAmountBought(amountBought),
	); err != nil {
		return RecordPurchaseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrRecordPurchaseCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being purchased for.
func (c RecordPurchaseCommand) ProductID() kernel.UUID {
	return c.productID
}

// PurchaseID returns the identifier of the new purchase event.
func (c RecordPurchaseCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}

// AmountBought returns the purchased quantity.
func (c RecordPurchaseCommand) AmountBought() int {
	return c.amountBought
}

func (c *RecordPurchaseCommand) setIDs(productID, purchaseID kernel.UUID) error {
	if err := errors.Join(productID.Validate(), purchaseID.Validate()); err != nil {
		return err
	}

	c.productID = productID
	c.purchaseID = purchaseID
	return nil
}

func (c *RecordPurchaseCommand) setAmountBought(amount int) error {
	if amount < 0 {
		return ErrAmountIsNegative
	}

	c.amountBought = amount
	return nil
}
