package ledger

// Totals holds the quantities aggregated from a product's ledger entries.
// A reconciliation always works from a fresh Totals read inside its own
// transaction; cached product fields are used only for diffing.
type Totals struct {
	// Purchased is the net purchased quantity:
	// max(0, sum(amountBought - quantityRefunded)).
	Purchased int

	// Received is the sum of receipt amounts.
	Received int

	// Delivered is the sum of delivery amounts.
	Delivered int
}

// TotalsOf aggregates in-memory ledger entries into Totals. The repository
// computes the same sums in SQL; this function defines the aggregation
// contract and backs the unit tests.
//
// The purchase sum is clamped at zero: refunds can drive the net below zero
// on paper, but a product can never have negative goods purchased.
func TotalsOf(purchases []*PurchaseEvent, receipts []*ReceiptEvent, deliveries []*DeliveryEvent) Totals {
	var totals Totals

	for _, p := range purchases {
		totals.Purchased += p.Net()
	}
	if totals.Purchased < 0 {
		totals.Purchased = 0
	}

	for _, r := range receipts {
		totals.Received += r.Amount()
	}

	for _, d := range deliveries {
		totals.Delivered += d.Amount()
	}

	return totals
}
