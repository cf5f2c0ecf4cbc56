package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

// ReconcileResult describes the outcome of one product reconciliation.
// Previous and Current carry the derived state before and after the run;
// when nothing drifted, Changed is false and both states are equal.
//
// The persisted transition is the signal external components (notification
// dispatch, reporting) key off; this engine itself performs no dispatch.
type ReconcileResult struct {
	Changed  bool
	Previous services.State
	Current  services.State
}

// ledgerAndProducts is the repository surface reconcileInTx needs. Both UoW
// and the read-only audit path satisfy it.
type ledgerAndProducts interface {
	ProductRepoFactory
	LedgerRepoFactory
}

// reconcileInTx recomputes one product's derived state inside the caller's
// open transaction and persists the delta if any. This is the one write path
// of the reconciliation engine; the explicit-trigger ledger commands and the
// standalone reconcile command both end up here.
//
// Sequence: lock the product row, aggregate totals fresh from the
// ledger, diff via the domain reconciler, persist only when drift was found.
// The row lock serializes reconciliations per product; aggregation reads the
// full current ledger, so the last reconciliation to commit reflects the
// union of all committed ledger writes.
func reconcileInTx(
	ctx context.Context,
	uow ledgerAndProducts,
	reconciler services.Reconciler,
	productID kernel.UUID,
) (ReconcileResult, error) {
	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.GetForUpdate(ctx, productID)
	if err != nil {
		return ReconcileResult{}, err
	}

	totals, err := uow.LedgerRepository().TotalsFor(ctx, productID)
	if err != nil {
		return ReconcileResult{}, err
	}

	report, err := reconciler.Inspect(aggregate, totals)
	if err != nil {
		return ReconcileResult{}, err
	}

	if report.IsConsistent() {
		return ReconcileResult{
			Previous: report.Stored,
			Current:  report.Stored,
		}, nil
	}

	if err = reconciler.Apply(aggregate, report); err != nil {
		return ReconcileResult{}, err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return ReconcileResult{}, err
	}

	return ReconcileResult{
		Changed:  true,
		Previous: report.Stored,
		Current:  report.Computed,
	}, nil
}
