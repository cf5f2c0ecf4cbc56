package ledger_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchaseEvent(t *testing.T) {
	t.Run("should create valid purchase event", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()

		event, err := ledger.NewPurchaseEvent(id, productID, 10)

		require.NoError(t, err)
		require.NoError(t, event.Validate())
		assert.True(t, event.ID().IsEqual(id))
		assert.True(t, event.ProductID().IsEqual(productID))
		assert.Equal(t, 10, event.AmountBought())
		assert.Equal(t, 0, event.QuantityRefunded())
		assert.Equal(t, 10, event.Net())
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		event, err := ledger.NewPurchaseEvent(kernel.NewUUID(), kernel.NewUUID(), 0)

		require.NoError(t, err)
		assert.Equal(t, 0, event.Net())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		event, err := ledger.NewPurchaseEvent(kernel.NewUUID(), kernel.NewUUID(), -1)

		require.Error(t, err)
		assert.Nil(t, event)
		assert.Contains(t, err.Error(), "amountBought is invalid")
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		event, err := ledger.NewPurchaseEvent(invalidID, kernel.NewUUID(), 10)

		require.Error(t, err)
		assert.Nil(t, event)
	})
}

func TestPurchaseEvent_Refund(t *testing.T) {
	t.Run("should reduce net contribution", func(t *testing.T) {
		event, err := ledger.NewPurchaseEvent(kernel.NewUUID(), kernel.NewUUID(), 10)
		require.NoError(t, err)

		err = event.Refund(3)

		require.NoError(t, err)
		assert.Equal(t, 3, event.QuantityRefunded())
		assert.Equal(t, 7, event.Net())
	})

	t.Run("should accumulate refunds", func(t *testing.T) {
		event, err := ledger.NewPurchaseEvent(kernel.NewUUID(), kernel.NewUUID(), 10)
		require.NoError(t, err)

		require.NoError(t, event.Refund(3))
		require.NoError(t, event.Refund(7))

		assert.Equal(t, 10, event.QuantityRefunded())
		assert.Equal(t, 0, event.Net())
	})

	t.Run("should fail when refund exceeds bought amount", func(t *testing.T) {
		event, err := ledger.NewPurchaseEvent(kernel.NewUUID(), kernel.NewUUID(), 10)
		require.NoError(t, err)
		require.NoError(t, event.Refund(8))

		err = event.Refund(3)

		require.Error(t, err)
		assert.ErrorIs(t, err, ledger.ErrRefundExceedsPurchase)
		assert.Equal(t, 8, event.QuantityRefunded())
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		event, err := ledger.NewPurchaseEvent(kernel.NewUUID(), kernel.NewUUID(), 10)
		require.NoError(t, err)

		err = event.Refund(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})
}

func TestRestorePurchaseEvent(t *testing.T) {
	t.Run("should restore event with refunded quantity", func(t *testing.T) {
		event, err := ledger.RestorePurchaseEvent(kernel.NewUUID(), kernel.NewUUID(), 10, 3)

		require.NoError(t, err)
		assert.Equal(t, 10, event.AmountBought())
		assert.Equal(t, 3, event.QuantityRefunded())
		assert.Equal(t, 7, event.Net())
	})

	t.Run("should fail when persisted refund exceeds bought amount", func(t *testing.T) {
		event, err := ledger.RestorePurchaseEvent(kernel.NewUUID(), kernel.NewUUID(), 10, 11)

		require.Error(t, err)
		assert.Nil(t, event)
		assert.ErrorIs(t, err, ledger.ErrRefundExceedsPurchase)
	})
}

func TestNewReceiptEvent(t *testing.T) {
	t.Run("should create valid receipt event", func(t *testing.T) {
		event, err := ledger.NewReceiptEvent(kernel.NewUUID(), kernel.NewUUID(), 5)

		require.NoError(t, err)
		require.NoError(t, event.Validate())
		assert.Equal(t, 5, event.Amount())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		event, err := ledger.NewReceiptEvent(kernel.NewUUID(), kernel.NewUUID(), -1)

		require.Error(t, err)
		assert.Nil(t, event)
	})
}

func TestNewDeliveryEvent(t *testing.T) {
	t.Run("should create valid delivery event", func(t *testing.T) {
		event, err := ledger.NewDeliveryEvent(kernel.NewUUID(), kernel.NewUUID(), 5)

		require.NoError(t, err)
		require.NoError(t, event.Validate())
		assert.Equal(t, 5, event.Amount())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		event, err := ledger.NewDeliveryEvent(kernel.NewUUID(), kernel.NewUUID(), -1)

		require.Error(t, err)
		assert.Nil(t, event)
	})
}

func TestEvent_Validate(t *testing.T) {
	t.Run("should reject directly constructed events", func(t *testing.T) {
		assert.ErrorIs(t, (&ledger.PurchaseEvent{}).Validate(), ledger.ErrPurchaseEventIsNotConstructed)
		assert.ErrorIs(t, (&ledger.ReceiptEvent{}).Validate(), ledger.ErrReceiptEventIsNotConstructed)
		assert.ErrorIs(t, (&ledger.DeliveryEvent{}).Validate(), ledger.ErrDeliveryEventIsNotConstructed)
	})
}
