package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordDeliveryCommandIsNotConstructed = errors.New(
	"RecordDeliveryCommand must be created via NewRecordDeliveryCommand constructor",
)

// RecordDeliveryCommand represents goods handed over to the customer.
// Recording the delivery and reconciling the product's status happen in one
// transaction.
type RecordDeliveryCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	deliveryID kernel.UUID
	amount     int

	guard guard.ConstructorGuard
}

// NewRecordDeliveryCommand creates a command to record a delivery event.
// Validates both identifiers and requires a non-negative amount.
func NewRecordDeliveryCommand(productID, deliveryID kernel.UUID, amount int) (RecordDeliveryCommand, error) {
	command := RecordDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(productID, deliveryID),
		command.setAmount(amount),
	); err != nil {
		return RecordDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being delivered.
func (c RecordDeliveryCommand) ProductID() kernel.UUID {
	return c.productID
}

// DeliveryID returns the identifier of the new delivery event.
func (c RecordDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Amount returns the delivered quantity.
func (c RecordDeliveryCommand) Amount() int {
	return c.amount
}

func (c *RecordDeliveryCommand) setIDs(productID, deliveryID kernel.UUID) error {
	if err := errors.Join(productID.Validate(), deliveryID.Validate()); err != nil {
		return err
	}

	c.productID = productID
	c.deliveryID = deliveryID
	return nil
}

func (c *RecordDeliveryCommand) setAmount(amount int) error {
	if amount < 0 {
		return ErrAmountIsNegative
	}

	c.amount = amount
	return nil
}
