package commands

import (
	"context"
)

// CancelProductCommandHandler marks a product as cancelled. Cancellation is
// terminal: subsequent reconciliation passes leave the product untouched.
type CancelProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCancelProductCommandHandler creates a handler for product cancellation operations.
func NewCancelProductCommandHandler(uowFactory ProductUoWFactory) CancelProductCommandHandler {
	return CancelProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the product under a row lock. Cancelling an already
// cancelled product returns product.ErrProductIsCancelled.
func (h *CancelProductCommandHandler) Handle(ctx context.Context, cmd CancelProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.Cancel(); err != nil {
		return err
	}

	if err = uow.ProductRepository().Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
