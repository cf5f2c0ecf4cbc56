package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// RefundPurchaseCommandHandler applies a refund to an existing purchase
// event and reconciles the owning product within the same transaction.
// A refund that drops the net purchased quantity below the requested amount
// reverts the status all the way back to Ordered, per the gating rules.
type RefundPurchaseCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewRefundPurchaseCommandHandler creates a handler for refund operations.
func NewRefundPurchaseCommandHandler(uowFactory UoWFactory) RefundPurchaseCommandHandler {
	return RefundPurchaseCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle updates the purchase's refunded quantity and reconciles the product
// atomically. Fails without effect if the purchase does not exist, does not
// belong to the product, or the refund exceeds the bought amount.
func (h *RefundPurchaseCommandHandler) Handle(ctx context.Context, cmd RefundPurchaseCommand) error {
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

	ledgerRepo := uow.LedgerRepository()

	event, err := ledgerRepo.GetPurchase(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	if !event.ProductID().IsEqual(cmd.ProductID()) {
		return ErrPurchaseNotOwnedByProduct
	}

	if err = event.Refund(cmd.Quantity()); err != nil {
		return err
	}

	if err = ledgerRepo.UpdatePurchase(ctx, event); err != nil {
		return err
	}

	if _, err = reconcileInTx(ctx, uow, h.reconciler, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
