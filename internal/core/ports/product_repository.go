// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Provides methods for storing, retrieving, and locking product entities.
//
// The reconciliation engine only ever writes a product's derived fields
// (the cached quantities, the status, and the updated-at timestamp); all
// other columns are owned by the creation workflow.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists the derived fields of an existing product: the cached
	// quantities, the status, and the updated-at timestamp. No other columns
	// are written. Returns a not-found error if the product does not exist.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product aggregate holding an exclusive
	// row-level lock for the rest of the surrounding transaction. Concurrent
	// reconciliations of the same product serialize on this lock; if it
	// cannot be acquired within a bounded wait the call fails with
	// errs.ObjectIsBusyError so the caller can retry later.
	//
	// Must be called inside an open transaction; the lock scope is exactly
	// one product row.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllIDs retrieves the identifiers of all products, ordered by id.
	// Used by the batch runner to iterate the catalog without loading
	// complete aggregates.
	GetAllIDs(ctx context.Context) ([]kernel.UUID, error)
}
