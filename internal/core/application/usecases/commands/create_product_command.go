package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrNameIsRequired           = errors.New("name is required")
	ErrAmountRequestedIsInvalid = errors.New("amountRequested must be greater than 0")
)

// CreateProductCommand represents a request to register a new product for
// fulfillment tracking. The product starts in Ordered status with all
// cached quantities at zero; everything after that is driven by the ledger.
//
// Example:
//
//	productID := kernel.NewUUID()
//	cmd, err := NewCreateProductCommand(productID, "Noise-cancelling headphones", 10)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	name            string
	amountRequested int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Validates that the product ID is valid, the name is not empty, and the
// requested amount is positive.
func NewCreateProductCommand(productID kernel.UUID, name string, amountRequested int) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setAmountRequested(amountRequested),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the human-readable description of the goods.
func (c CreateProductCommand) Name() string {
	return c.name
}

// AmountRequested returns the target quantity.
func (c CreateProductCommand) AmountRequested() int {
	return c.amountRequested
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setAmountRequested(amount int) error {
	if amount <= 0 {
		return ErrAmountRequestedIsInvalid
	}

	c.amountRequested = amount
	return nil
}
