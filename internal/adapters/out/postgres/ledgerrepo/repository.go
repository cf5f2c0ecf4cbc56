package ledgerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerRepository {
	return &GormLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddPurchase saves a new purchase event to the database.
func (r *GormLedgerRepository) AddPurchase(ctx context.Context, event *ledger.PurchaseEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := purchaseFromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// GetPurchase retrieves a purchase event by ID.
func (r *GormLedgerRepository) GetPurchase(ctx context.Context, id kernel.UUID) (*ledger.PurchaseEvent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseEventDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase", id.String())
		}
		return nil, err
	}

	return purchaseToDomain(dto)
}

// UpdatePurchase saves the refunded quantity of an existing purchase event.
func (r *GormLedgerRepository) UpdatePurchase(ctx context.Context, event *ledger.PurchaseEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := purchaseFromDomain(event)
	result := r.db.WithContext(ctx).
		Model(&PurchaseEventDTO{}).
		Where("id = ?", dto.ID).
		Update("quantity_refunded", dto.QuantityRefunded)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// AddReceipt saves a new receipt event to the database.
func (r *GormLedgerRepository) AddReceipt(ctx context.Context, event *ledger.ReceiptEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := receiptFromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// AddDelivery saves a new delivery event to the database.
func (r *GormLedgerRepository) AddDelivery(ctx context.Context, event *ledger.DeliveryEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := deliveryFromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// RemovePurchase deletes a purchase event owned by the given product.
func (r *GormLedgerRepository) RemovePurchase(ctx context.Context, productID, eventID kernel.UUID) error {
	return r.remove(ctx, &PurchaseEventDTO{}, "purchase", productID, eventID)
}

// RemoveReceipt deletes a receipt event owned by the given product.
func (r *GormLedgerRepository) RemoveReceipt(ctx context.Context, productID, eventID kernel.UUID) error {
	return r.remove(ctx, &ReceiptEventDTO{}, "receipt", productID, eventID)
}

// RemoveDelivery deletes a delivery event owned by the given product.
func (r *GormLedgerRepository) RemoveDelivery(ctx context.Context, productID, eventID kernel.UUID) error {
	return r.remove(ctx, &DeliveryEventDTO{}, "delivery", productID, eventID)
}

// remove deletes one ledger row scoped to its owning product. Scoping by
// product id keeps a caller from deleting another product's entry with a
// guessed event id.
func (r *GormLedgerRepository) remove(
	ctx context.Context,
	model any,
	paramName string,
	productID, eventID kernel.UUID,
) error {
	if err := errors.Join(productID.Validate(), eventID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", eventID.Bytes(), productID.Bytes()).
		Delete(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, eventID.String())
	}

	return nil
}

// TotalsFor aggregates the ledger quantities for one product. The purchase
// sum nets refunds out and is clamped at zero; receipts and deliveries are
// plain sums. Aggregation always reads the full current ledger, never a
// delta.
func (r *GormLedgerRepository) TotalsFor(ctx context.Context, productID kernel.UUID) (ledger.Totals, error) {
	if err := productID.Validate(); err != nil {
		return ledger.Totals{}, err
	}

	var purchased int64
	if err := r.db.WithContext(ctx).
		Model(&PurchaseEventDTO{}).
		Where("product_id = ?", productID.Bytes()).
		Select("COALESCE(SUM(amount_bought - quantity_refunded), 0)").
		Scan(&purchased).Error; err != nil {
		return ledger.Totals{}, err
	}
	if purchased < 0 {
		purchased = 0
	}

	var received int64
	if err := r.db.WithContext(ctx).
		Model(&ReceiptEventDTO{}).
		Where("product_id = ?", productID.Bytes()).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&received).Error; err != nil {
		return ledger.Totals{}, err
	}

	var delivered int64
	if err := r.db.WithContext(ctx).
		Model(&DeliveryEventDTO{}).
		Where("product_id = ?", productID.Bytes()).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&delivered).Error; err != nil {
		return ledger.Totals{}, err
	}

	return ledger.Totals{
		Purchased: int(purchased),
		Received:  int(received),
		Delivered: int(delivered),
	}, nil
}
