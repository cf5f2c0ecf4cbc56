package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for the three
// append-only ledger relations backing a product's derived state.
//
// Mutations here are performed on behalf of the external purchasing,
// receiving, and delivery workflows; every code path that calls one of the
// mutating methods must reconcile the affected product within the same
// transaction. The reconciliation engine itself only reads, through
// TotalsFor.
type LedgerRepository interface {
	// AddPurchase persists a new purchase event.
	AddPurchase(ctx context.Context, event *ledger.PurchaseEvent) error

	// GetPurchase retrieves a purchase event by its identifier.
	GetPurchase(ctx context.Context, id kernel.UUID) (*ledger.PurchaseEvent, error)

	// UpdatePurchase persists the refunded quantity of an existing purchase.
	UpdatePurchase(ctx context.Context, event *ledger.PurchaseEvent) error

	// AddReceipt persists a new receipt event.
	AddReceipt(ctx context.Context, event *ledger.ReceiptEvent) error

	// AddDelivery persists a new delivery event.
	AddDelivery(ctx context.Context, event *ledger.DeliveryEvent) error

	// RemovePurchase deletes a purchase event owned by the given product.
	// Returns a not-found error if no such event exists.
	RemovePurchase(ctx context.Context, productID, eventID kernel.UUID) error

	// RemoveReceipt deletes a receipt event owned by the given product.
	// Returns a not-found error if no such event exists.
	RemoveReceipt(ctx context.Context, productID, eventID kernel.UUID) error

	// RemoveDelivery deletes a delivery event owned by the given product.
	// Returns a not-found error if no such event exists.
	RemoveDelivery(ctx context.Context, productID, eventID kernel.UUID) error

	// TotalsFor aggregates the ledger quantities for one product: the net
	// purchased sum clamped at zero, the receipt sum, and the delivery sum.
	// A product without ledger entries yields zero totals.
	TotalsFor(ctx context.Context, productID kernel.UUID) (ledger.Totals, error)
}
