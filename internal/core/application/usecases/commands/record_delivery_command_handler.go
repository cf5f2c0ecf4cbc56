package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/services"
)

// RecordDeliveryCommandHandler inserts a delivery event and reconciles the
// owning product within the same transaction.
type RecordDeliveryCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewRecordDeliveryCommandHandler creates a handler for delivery recording operations.
func NewRecordDeliveryCommandHandler(uowFactory UoWFactory) RecordDeliveryCommandHandler {
	return RecordDeliveryCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle records the delivery event and reconciles the product atomically.
func (h *RecordDeliveryCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := ledger.NewDeliveryEvent(cmd.DeliveryID(), cmd.ProductID(), cmd.Amount())
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

	if err = uow.LedgerRepository().AddDelivery(ctx, event); err != nil {
		return err
	}

	if _, err = reconcileInTx(ctx, uow, h.reconciler, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
