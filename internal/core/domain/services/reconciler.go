package services

import (
	"strconv"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/product"
)

// State is a snapshot of a product's derived fields: the cached quantities
// and the lifecycle status. Reports carry one stored and one computed State.
type State struct {
	AmountPurchased int
	AmountReceived  int
	AmountDelivered int
	Status          product.Status
}

// stateOf captures the derived fields of a product aggregate.
func stateOf(p *product.Product) State {
	return State{
		AmountPurchased: p.AmountPurchased(),
		AmountReceived:  p.AmountReceived(),
		AmountDelivered: p.AmountDelivered(),
		Status:          p.Status(),
	}
}

// Discrepancy describes one derived field whose stored value diverges from
// the value computed from the ledger. Values are rendered as strings so the
// diagnostic output reads uniformly for quantities and statuses.
type Discrepancy struct {
	Field    string
	Stored   string
	Computed string
}

// Report is the outcome of inspecting one product against its ledger.
// It lists every field that drifted, with both values, and carries the full
// stored and computed states for callers that persist or display them.
type Report struct {
	ProductID     kernel.UUID
	Stored        State
	Computed      State
	Discrepancies []Discrepancy
}

// IsConsistent reports whether the stored state matches the computed state.
func (r Report) IsConsistent() bool {
	return len(r.Discrepancies) == 0
}

// Reconciler is the domain service that compares a product's stored derived
// state against the state implied by its ledger totals. It is the single
// source of truth for that computation: the read-only audit and the
// repairing reconciliation both go through Inspect, so they can never
// disagree.
//
// Business rules:
//   - The computed quantities come straight from the ledger totals
//   - The computed status comes from product.DetermineStatus
//   - Cancelled products are reported consistent regardless of totals;
//     recomputing them is a policy no-op (pending product-owner confirmation
//     of revival semantics, ledger events on cancelled products accumulate
//     without effect)
//
// Example usage:
//
//	reconciler := services.NewReconciler()
//	report, err := reconciler.Inspect(p, totals)
//	if err != nil {
//	    return err
//	}
//	if !report.IsConsistent() {
//	    if err := reconciler.Apply(p, report); err != nil {
//	        return err
//	    }
//	    // persist p's derived fields
//	}
type Reconciler struct{}

// NewReconciler creates a new Reconciler instance.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// Inspect computes the expected derived state for a product from its ledger
// totals and diffs it against the stored state. It never mutates the
// aggregate, which makes it equally usable for diagnostics and as the
// decision step of a repairing reconciliation.
func (r Reconciler) Inspect(p *product.Product, totals ledger.Totals) (Report, error) {
	if err := p.Validate(); err != nil {
		return Report{}, err
	}

	stored := stateOf(p)

	if p.Status().IsTerminal() {
		return Report{
			ProductID: p.ID(),
			Stored:    stored,
			Computed:  stored,
		}, nil
	}

	computed := State{
		AmountPurchased: totals.Purchased,
		AmountReceived:  totals.Received,
		AmountDelivered: totals.Delivered,
		Status: product.DetermineStatus(
			totals.Purchased,
			totals.Received,
			totals.Delivered,
			p.AmountRequested(),
			p.Status(),
		),
	}

	return Report{
		ProductID:     p.ID(),
		Stored:        stored,
		Computed:      computed,
		Discrepancies: diff(stored, computed),
	}, nil
}

// Apply mutates the product aggregate to the computed state of the report.
// Applying a consistent report is a no-op, which gives the reconciliation
// its idempotence: a second run over an unchanged ledger finds nothing to
// write.
func (r Reconciler) Apply(p *product.Product, report Report) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if report.IsConsistent() {
		return nil
	}

	return p.ApplyRecount(
		report.Computed.AmountPurchased,
		report.Computed.AmountReceived,
		report.Computed.AmountDelivered,
		report.Computed.Status,
	)
}

// diff enumerates the derived fields whose stored and computed values differ.
func diff(stored, computed State) []Discrepancy {
	var discrepancies []Discrepancy

	appendInt := func(field string, storedValue, computedValue int) {
		if storedValue != computedValue {
			discrepancies = append(discrepancies, Discrepancy{
				Field:    field,
				Stored:   strconv.Itoa(storedValue),
				Computed: strconv.Itoa(computedValue),
			})
		}
	}

	appendInt("amountPurchased", stored.AmountPurchased, computed.AmountPurchased)
	appendInt("amountReceived", stored.AmountReceived, computed.AmountReceived)
	appendInt("amountDelivered", stored.AmountDelivered, computed.AmountDelivered)

	if stored.Status != computed.Status {
		discrepancies = append(discrepancies, Discrepancy{
			Field:    "status",
			Stored:   stored.Status.String(),
			Computed: computed.Status.String(),
		})
	}

	return discrepancies
}
