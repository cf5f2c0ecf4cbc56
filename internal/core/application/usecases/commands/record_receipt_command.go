package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordReceiptCommandIsNotConstructed = errors.New(
	"RecordReceiptCommand must be created via NewRecordReceiptCommand constructor",
)

// RecordReceiptCommand represents goods arriving at the warehouse for a
// product. Recording the receipt and reconciling the product's status
// happen in one transaction.
type RecordReceiptCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	receiptID kernel.UUID
	amount    int

	guard guard.ConstructorGuard
}

// NewRecordReceiptCommand creates a command to record a receipt event.
// Validates both identifiers and requires a non-negative amount.
func NewRecordReceiptCommand(productID, receiptID kernel.UUID, amount int) (RecordReceiptCommand, error) {
	command := RecordReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(productID, receiptID),
		command.setAmount(amount),
	); err != nil {
		return RecordReceiptCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordReceiptCommand) Validate() error {
	return c.guard.Validate(ErrRecordReceiptCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being received.
func (c RecordReceiptCommand) ProductID() kernel.UUID {
	return c.productID
}

// ReceiptID returns the identifier of the new receipt event.
func (c RecordReceiptCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// Amount returns the received quantity.
func (c RecordReceiptCommand) Amount() int {
	return c.amount
}

func (c *RecordReceiptCommand) setIDs(productID, receiptID kernel.UUID) error {
	if err := errors.Join(productID.Validate(), receiptID.Validate()); err != nil {
		return err
	}

	c.productID = productID
	c.receiptID = receiptID
	return nil
}

func (c *RecordReceiptCommand) setAmount(amount int) error {
	if amount < 0 {
		return ErrAmountIsNegative
	}

	c.amount = amount
	return nil
}
