package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// ReconcileProductCommandHandler runs a single-product reconciliation on
// demand. The result reports whether anything drifted and what the state
// looked like before and after.
type ReconcileProductCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewReconcileProductCommandHandler creates a handler for standalone reconciliation operations.
func NewReconcileProductCommandHandler(uowFactory UoWFactory) ReconcileProductCommandHandler {
	return ReconcileProductCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle reconciles the product in its own transaction. Running it against a
// consistent product changes nothing and reports Changed=false; repeated runs
// against the same ledger converge on the first pass.
func (h *ReconcileProductCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileProductCommand,
) (ReconcileResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReconcileResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result, err := reconcileInTx(ctx, uow, h.reconciler, cmd.ProductID())
	if err != nil {
		return ReconcileResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReconcileResult{}, err
	}

	return result, nil
}
