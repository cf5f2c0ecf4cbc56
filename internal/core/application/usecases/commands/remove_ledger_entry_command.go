package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveLedgerEntryCommandIsNotConstructed = errors.New(
	"RemoveLedgerEntryCommand must be created via NewRemoveLedgerEntryCommand constructor",
)

// LedgerEntryKind identifies which of the three ledger relations an entry
// belongs to.
type LedgerEntryKind int

const (
	// UnknownEntry represents an invalid or undefined entry kind.
	UnknownEntry LedgerEntryKind = iota

	// PurchaseEntry identifies the purchase_events relation.
	PurchaseEntry

	// ReceiptEntry identifies the receipt_events relation.
	ReceiptEntry

	// DeliveryEntry identifies the delivery_events relation.
	DeliveryEntry
)

// Validate checks if the LedgerEntryKind value is valid.
func (k LedgerEntryKind) Validate() error {
	switch k {
	case PurchaseEntry, ReceiptEntry, DeliveryEntry:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"entry kind is invalid",
			fmt.Errorf("%d is not a valid ledger entry kind", k),
		)
	}
}

// RemoveLedgerEntryCommand represents the deletion of a ledger entry on
// behalf of an external correction workflow. Removing the entry and
// reconciling the product's status happen in one transaction, so readers
// never observe the deletion with a stale status.
type RemoveLedgerEntryCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	entryID   kernel.UUID
	kind      LedgerEntryKind

	guard guard.ConstructorGuard
}

// NewRemoveLedgerEntryCommand creates a command to delete a ledger entry.
// Validates both identifiers and the entry kind.
func NewRemoveLedgerEntryCommand(
	productID, entryID kernel.UUID,
	kind LedgerEntryKind,
) (RemoveLedgerEntryCommand, error) {
	if err := errors.Join(productID.Validate(), entryID.Validate(), kind.Validate()); err != nil {
		return RemoveLedgerEntryCommand{}, err
	}

	return RemoveLedgerEntryCommand{
		productID: productID,
		entryID:   entryID,
		kind:      kind,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLedgerEntryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLedgerEntryCommandIsNotConstructed)
}

// ProductID returns the identifier of the product owning the entry.
func (c RemoveLedgerEntryCommand) ProductID() kernel.UUID {
	return c.productID
}

// EntryID returns the identifier of the entry being removed.
func (c RemoveLedgerEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

// Kind returns the ledger relation the entry belongs to.
func (c RemoveLedgerEntryCommand) Kind() LedgerEntryKind {
	return c.kind
}
