package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAuditProductQueryIsNotConstructed = errors.New(
	"AuditProductQuery must be created via NewAuditProductQuery constructor",
)

// AuditProductQuery requests a read-only consistency check of one product:
// its stored derived state diffed against a fresh aggregate of its ledger.
// Nothing is written; operators use the report to decide whether to trigger
// a repair.
//
// Example:
//
//	query, err := NewAuditProductQuery(productID)
//	if err != nil {
//	    return err
//	}
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	if !report.IsConsistent() {
//	    fmt.Printf("product %s drifted in %d fields\n",
//	        report.ProductID, len(report.Discrepancies))
//	}
type AuditProductQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAuditProductQuery creates a query to audit the given product.
func NewAuditProductQuery(productID kernel.UUID) (AuditProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return AuditProductQuery{}, err
	}

	return AuditProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuditProductQueryIsNotConstructed if validation fails.
func (q AuditProductQuery) Validate() error {
	return q.guard.Validate(ErrAuditProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the product being audited.
func (q AuditProductQuery) ProductID() kernel.UUID {
	return q.productID
}
