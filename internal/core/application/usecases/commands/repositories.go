// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
//
// Every command that mutates a ledger event reconciles the owning product
// within the same transaction. That explicit call is the trigger contract of
// the reconciliation engine: external readers never observe a committed
// ledger change with a stale product status.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// ProductUoW manages transactions for product-only operations.
	// Used when commands only touch the product aggregate.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UoW manages transactions spanning the ledger and the product aggregate.
	// Used by every command that mutates a ledger event, since the mutation
	// and the resulting reconciliation must commit or roll back together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ledgerRepo := uow.LedgerRepository()
	//   productRepo := uow.ProductRepository()
	//   // ... insert event, reconcile product
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ProductRepoFactory
		LedgerRepoFactory
	}

	// UoWFactory creates new unit of work instances for ledger-and-product operations.
	UoWFactory interface {
		Create() UoW
	}
)
