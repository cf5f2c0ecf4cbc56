// Package ledger provides the append-only transaction records that back a
// product's derived state. Every quantity shown on a product is the sum of
// the ledger entries for that product, never a directly mutated counter.
//
// The package includes:
//   - PurchaseEvent: goods bought from a supplier, with a refundable quantity
//   - ReceiptEvent: goods arriving at the warehouse
//   - DeliveryEvent: goods handed over to the customer
//   - Totals: the aggregated quantities a reconciliation works from
//
// Ledger entries are created, updated, and deleted by the external
// purchasing, receiving, and delivery workflows; the reconciliation engine
// only ever reads them.
package ledger
