package ledger

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrPurchaseEventIsNotConstructed is returned when a PurchaseEvent was not
	// created through NewPurchaseEvent.
	ErrPurchaseEventIsNotConstructed = errors.New("PurchaseEvent must be created via NewPurchaseEvent constructor")

	// ErrReceiptEventIsNotConstructed is returned when a ReceiptEvent was not
	// created through NewReceiptEvent.
	ErrReceiptEventIsNotConstructed = errors.New("ReceiptEvent must be created via NewReceiptEvent constructor")

	// ErrDeliveryEventIsNotConstructed is returned when a DeliveryEvent was not
	// created through NewDeliveryEvent.
	ErrDeliveryEventIsNotConstructed = errors.New("DeliveryEvent must be created via NewDeliveryEvent constructor")

	// ErrRefundExceedsPurchase is returned when a refund would push the
	// refunded quantity of a single purchase past the bought quantity.
	ErrRefundExceedsPurchase = errors.New("refunded quantity exceeds bought quantity")
)

// PurchaseEvent records goods bought from a supplier for a product.
// The bought quantity may later be partially or fully refunded; the net
// contribution of the event to the product's purchased amount is
// amountBought minus quantityRefunded.
type PurchaseEvent struct {
	id               kernel.UUID
	productID        kernel.UUID
	amountBought     int
	quantityRefunded int
	isConstructed    bool
}

// NewPurchaseEvent creates a purchase record for the given product.
// The bought amount must be non-negative; the refunded quantity starts at zero.
func NewPurchaseEvent(id, productID kernel.UUID, amountBought int) (*PurchaseEvent, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	if amountBought < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amountBought is invalid",
			fmt.Errorf("%d is negative", amountBought),
		)
	}

	return &PurchaseEvent{
		id:            id,
		productID:     productID,
		amountBought:  amountBought,
		isConstructed: true,
	}, nil
}

// RestorePurchaseEvent reconstructs a purchase record from persistence.
func RestorePurchaseEvent(id, productID kernel.UUID, amountBought, quantityRefunded int) (*PurchaseEvent, error) {
	event, err := NewPurchaseEvent(id, productID, amountBought)
	if err != nil {
		return nil, err
	}

	if err = event.Refund(quantityRefunded); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate ensures the event was created through a constructor.
func (e *PurchaseEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrPurchaseEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *PurchaseEvent) ID() kernel.UUID {
	return e.id
}

// ProductID returns the identifier of the owning product.
func (e *PurchaseEvent) ProductID() kernel.UUID {
	return e.productID
}

// AmountBought returns the originally bought quantity.
func (e *PurchaseEvent) AmountBought() int {
	return e.amountBought
}

// QuantityRefunded returns the quantity refunded so far.
func (e *PurchaseEvent) QuantityRefunded() int {
	return e.quantityRefunded
}

// Net returns the event's contribution to the purchased quantity:
// bought minus refunded. A single event never goes negative; clamping of
// the overall sum happens in the aggregation.
func (e *PurchaseEvent) Net() int {
	return e.amountBought - e.quantityRefunded
}

// Refund adds the given quantity to the refunded total.
// The combined refund must not exceed the bought amount.
func (e *PurchaseEvent) Refund(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	if e.quantityRefunded+quantity > e.amountBought {
		return ErrRefundExceedsPurchase
	}

	e.quantityRefunded += quantity
	return nil
}

// ReceiptEvent records goods arriving at the warehouse for a product.
type ReceiptEvent struct {
	id            kernel.UUID
	productID     kernel.UUID
	amount        int
	isConstructed bool
}

// NewReceiptEvent creates a receipt record for the given product.
// The amount must be non-negative.
func NewReceiptEvent(id, productID kernel.UUID, amount int) (*ReceiptEvent, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	if amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amount),
		)
	}

	return &ReceiptEvent{
		id:            id,
		productID:     productID,
		amount:        amount,
		isConstructed: true,
	}, nil
}

// Validate ensures the event was created through the constructor.
func (e *ReceiptEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrReceiptEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *ReceiptEvent) ID() kernel.UUID {
	return e.id
}

// ProductID returns the identifier of the owning product.
func (e *ReceiptEvent) ProductID() kernel.UUID {
	return e.productID
}

// Amount returns the received quantity.
func (e *ReceiptEvent) Amount() int {
	return e.amount
}

// DeliveryEvent records goods handed over to the customer for a product.
type DeliveryEvent struct {
	id            kernel.UUID
	productID     kernel.UUID
	amount        int
	isConstructed bool
}

// NewDeliveryEvent creates a delivery record for the given product.
// The amount must be non-negative.
func NewDeliveryEvent(id, productID kernel.UUID, amount int) (*DeliveryEvent, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	if amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amount),
		)
	}

	return &DeliveryEvent{
		id:            id,
		productID:     productID,
		amount:        amount,
		isConstructed: true,
	}, nil
}

// Validate ensures the event was created through the constructor.
func (e *DeliveryEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrDeliveryEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *DeliveryEvent) ID() kernel.UUID {
	return e.id
}

// ProductID returns the identifier of the owning product.
func (e *DeliveryEvent) ProductID() kernel.UUID {
	return e.productID
}

// Amount returns the delivered quantity.
func (e *DeliveryEvent) Amount() int {
	return e.amount
}
