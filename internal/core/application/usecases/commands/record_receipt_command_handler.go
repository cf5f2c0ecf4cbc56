package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/services"
)

// RecordReceiptCommandHandler inserts a receipt event and reconciles the
// owning product within the same transaction.
type RecordReceiptCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewRecordReceiptCommandHandler creates a handler for receipt recording operations.
func NewRecordReceiptCommandHandler(uowFactory UoWFactory) RecordReceiptCommandHandler {
	return RecordReceiptCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle records the receipt event and reconciles the product atomically.
func (h *RecordReceiptCommandHandler) Handle(ctx context.Context, cmd RecordReceiptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := ledger.NewReceiptEvent(cmd.ReceiptID(), cmd.ProductID(), cmd.Amount())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LedgerRepository().AddReceipt(ctx, event); err != nil {
		return err
	}

	if _, err = reconcileInTx(ctx, uow, h.reconciler, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
