package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

// SweepResult summarizes one full reconciliation sweep. Consistent and
// Inconsistent partition the products that were inspected successfully;
// Fixed counts the drifted products actually repaired, Failed counts the
// products whose inspection or repair returned an error.
type SweepResult struct {
	Inspected    int
	Consistent   int
	Inconsistent int
	Fixed        int
	Failed       int
}

// ReconcileAllProductsCommandHandler sweeps every product, comparing stored
// state against the ledger. Each product is handled independently: one
// failing product does not abort the sweep, it is counted and the sweep
// moves on.
type ReconcileAllProductsCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewReconcileAllProductsCommandHandler creates a handler for full sweep operations.
func NewReconcileAllProductsCommandHandler(uowFactory UoWFactory) ReconcileAllProductsCommandHandler {
	return ReconcileAllProductsCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle runs the sweep and returns the aggregate counts. In report-only
// mode products are read without locks; in fix mode each drifted product is
// repaired under its own short transaction, so the sweep never holds more
// than one row lock at a time.
func (h *ReconcileAllProductsCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileAllProductsCommand,
) (SweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepResult{}, err
	}

	reader := h.uowFactory.Create()

	ids, err := reader.ProductRepository().GetAllIDs(ctx)
	if err != nil {
		return SweepResult{}, err
	}

	var result SweepResult
	for _, id := range ids {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		if cmd.FixDrift() {
			h.fixOne(ctx, id, &result)
		} else {
			h.inspectOne(ctx, reader, id, &result)
		}
	}

	return result, nil
}

// inspectOne reads the product and its totals without locking and records
// whether they agree. A product deleted mid-sweep counts as a failure.
func (h *ReconcileAllProductsCommandHandler) inspectOne(
	ctx context.Context,
	reader UoW,
	id kernel.UUID,
	result *SweepResult,
) {
	aggregate, err := reader.ProductRepository().Get(ctx, id)
	if err != nil {
		result.Failed++
		return
	}

	totals, err := reader.LedgerRepository().TotalsFor(ctx, id)
	if err != nil {
		result.Failed++
		return
	}

	report, err := h.reconciler.Inspect(aggregate, totals)
	if err != nil {
		result.Failed++
		return
	}

	result.Inspected++
	if report.IsConsistent() {
		result.Consistent++
	} else {
		result.Inconsistent++
	}
}

// fixOne reconciles one product in its own transaction.
func (h *ReconcileAllProductsCommandHandler) fixOne(
	ctx context.Context,
	id kernel.UUID,
	result *SweepResult,
) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		result.Failed++
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outcome, err := reconcileInTx(ctx, uow, h.reconciler, id)
	if err != nil {
		result.Failed++
		return
	}

	if err = uow.Commit(ctx); err != nil {
		result.Failed++
		return
	}

	result.Inspected++
	if outcome.Changed {
		result.Inconsistent++
		result.Fixed++
	} else {
		result.Consistent++
	}
}
