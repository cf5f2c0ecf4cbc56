// Package queries contains read-only operations over the fulfillment data.
// Implements the Query side of the CQRS architecture: listing reads go
// straight to SQL for performance, while the audit read reuses the domain
// reconciler so the report always matches what a repair run would do.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves every tracked product with its stored amounts
// and status. Used by dashboards and the listing endpoint.
//
// Example:
//
//	query := NewGetProductsQuery()
//	handler := NewGetProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
//
//	fmt.Printf("Tracking %d products\n", len(products))
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve all products.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse represents one product read model. Amounts are the
// stored values as of the last reconciliation, not a fresh ledger aggregate.
type GetProductsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	AmountRequested int
	AmountPurchased int
	AmountReceived  int
	AmountDelivered int
	Status          string
	UpdatedAt       time.Time
}
