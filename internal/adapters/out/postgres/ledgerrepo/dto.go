// Package ledgerrepo provides data transfer objects and mapping functions for
// the three append-only ledger relations: purchase, receipt, and delivery
// events. Each relation is owned many-to-one by a product and carries the
// quantities the reconciliation engine aggregates from.
package ledgerrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// PurchaseEventDTO represents the database structure for purchase events.
// The net contribution of a row to a product's purchased quantity is
// amount_bought - quantity_refunded.
type PurchaseEventDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID `gorm:"type:uuid;index"`
	AmountBought     int
	QuantityRefunded int
	CreatedAt        time.Time
}

// TableName specifies the database table name for purchase events.
func (PurchaseEventDTO) TableName() string {
	return "purchase_events"
}

// ReceiptEventDTO represents the database structure for receipt events.
type ReceiptEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Amount    int
	CreatedAt time.Time
}

// TableName specifies the database table name for receipt events.
func (ReceiptEventDTO) TableName() string {
	return "receipt_events"
}

// DeliveryEventDTO represents the database structure for delivery events.
type DeliveryEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Amount    int
	CreatedAt time.Time
}

// TableName specifies the database table name for delivery events.
func (DeliveryEventDTO) TableName() string {
	return "delivery_events"
}

// purchaseFromDomain converts a purchase event to its database representation.
func purchaseFromDomain(event *ledger.PurchaseEvent) PurchaseEventDTO {
	return PurchaseEventDTO{
		ID:               event.ID().Bytes(),
		ProductID:        event.ProductID().Bytes(),
		AmountBought:     event.AmountBought(),
		QuantityRefunded: event.QuantityRefunded(),
	}
}

// purchaseToDomain converts a database DTO to a purchase event.
func purchaseToDomain(dto PurchaseEventDTO) (*ledger.PurchaseEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return ledger.RestorePurchaseEvent(id, productID, dto.AmountBought, dto.QuantityRefunded)
}

// receiptFromDomain converts a receipt event to its database representation.
func receiptFromDomain(event *ledger.ReceiptEvent) ReceiptEventDTO {
	return ReceiptEventDTO{
		ID:        event.ID().Bytes(),
		ProductID: event.ProductID().Bytes(),
		Amount:    event.Amount(),
	}
}

// deliveryFromDomain converts a delivery event to its database representation.
func deliveryFromDomain(event *ledger.DeliveryEvent) DeliveryEventDTO {
	return DeliveryEventDTO{
		ID:        event.ID().Bytes(),
		ProductID: event.ProductID().Bytes(),
		Amount:    event.Amount(),
	}
}
