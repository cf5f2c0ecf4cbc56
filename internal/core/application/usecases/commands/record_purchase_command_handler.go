package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/services"
)

// RecordPurchaseCommandHandler inserts a purchase event and reconciles the
// owning product within the same transaction. The synchronous reconcile is
// the trigger contract: by the time the caller gets a response, the
// product's status already reflects the new ledger entry.
type RecordPurchaseCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewRecordPurchaseCommandHandler creates a handler for purchase recording operations.
func NewRecordPurchaseCommandHandler(uowFactory UoWFactory) RecordPurchaseCommandHandler {
	return RecordPurchaseCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle records the purchase event and reconciles the product atomically.
// Either both the event insert and the status repair commit, or neither does.
func (h *RecordPurchaseCommandHandler) Handle(ctx context.Context, cmd RecordPurchaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := ledger.NewPurchaseEvent(cmd.PurchaseID(), cmd.ProductID(), cmd.AmountBought())
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

	if err = uow.LedgerRepository().AddPurchase(ctx, event); err != nil {
		return err
	}

	if _, err = reconcileInTx(ctx, uow, h.reconciler, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
