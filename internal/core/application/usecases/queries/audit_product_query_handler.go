package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AuditProductQueryHandler produces a drift report for one product without
// modifying anything. It loads the aggregate and the ledger totals through
// the same repositories the write path uses and runs them through the same
// domain reconciler, so an audit that reports drift is exactly the drift a
// repair would fix.
type AuditProductQueryHandler struct {
	products   ports.ProductRepository
	ledger     ports.LedgerRepository
	reconciler services.Reconciler
}

// NewAuditProductQueryHandler creates a handler for product audit queries.
func NewAuditProductQueryHandler(
	products ports.ProductRepository,
	ledger ports.LedgerRepository,
) AuditProductQueryHandler {
	return AuditProductQueryHandler{
		products:   products,
		ledger:     ledger,
		reconciler: services.NewReconciler(),
	}
}

// Handle inspects the product against its ledger and returns the report.
// The product and totals are read without locks; a ledger write committed
// between the two reads shows up as drift in the report, which the next
// audit or repair resolves.
func (h AuditProductQueryHandler) Handle(
	ctx context.Context,
	query AuditProductQuery,
) (services.Report, error) {
	if err := query.Validate(); err != nil {
		return services.Report{}, err
	}

	aggregate, err := h.products.Get(ctx, query.ProductID())
	if err != nil {
		return services.Report{}, err
	}

	totals, err := h.ledger.TotalsFor(ctx, query.ProductID())
	if err != nil {
		return services.Report{}, err
	}

	return h.reconciler.Inspect(aggregate, totals)
}
