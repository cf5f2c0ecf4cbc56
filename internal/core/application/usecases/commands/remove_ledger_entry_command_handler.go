package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// RemoveLedgerEntryCommandHandler deletes a ledger entry and reconciles the
// owning product within the same transaction, so the derived amounts and
// status never outlive the entry they were computed from.
type RemoveLedgerEntryCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewRemoveLedgerEntryCommandHandler creates a handler for ledger entry removal operations.
func NewRemoveLedgerEntryCommandHandler(uowFactory UoWFactory) RemoveLedgerEntryCommandHandler {
	return RemoveLedgerEntryCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle removes the ledger entry and reconciles the product atomically.
// Removal is scoped to the product named in the command: an entry ID that
// belongs to another product is reported as not found rather than deleted.
func (h *RemoveLedgerEntryCommandHandler) Handle(ctx context.Context, cmd RemoveLedgerEntryCommand) error {
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

	var err error
	switch cmd.Kind() {
	case PurchaseEntry:
		err = uow.LedgerRepository().RemovePurchase(ctx, cmd.ProductID(), cmd.EntryID())
	case ReceiptEntry:
		err = uow.LedgerRepository().RemoveReceipt(ctx, cmd.ProductID(), cmd.EntryID())
	case DeliveryEntry:
		err = uow.LedgerRepository().RemoveDelivery(ctx, cmd.ProductID(), cmd.EntryID())
	case UnknownEntry:
		err = cmd.Kind().Validate()
	}
	if err != nil {
		return err
	}

	if _, err = reconcileInTx(ctx, uow, h.reconciler, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
