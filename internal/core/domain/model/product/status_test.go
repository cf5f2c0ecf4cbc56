package product_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(product.Unknown))
		assert.Equal(t, 1, int(product.Ordered))
		assert.Equal(t, 2, int(product.Purchased))
		assert.Equal(t, 3, int(product.Received))
		assert.Equal(t, 4, int(product.Delivered))
		assert.Equal(t, 5, int(product.Cancelled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []product.Status{
			product.Unknown,
			product.Ordered,
			product.Purchased,
			product.Received,
			product.Delivered,
			product.Cancelled,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []product.Status{
			product.Ordered,
			product.Purchased,
			product.Received,
			product.Delivered,
			product.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := product.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []product.Status{
			product.Status(-1),
			product.Status(6),
			product.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string representations", func(t *testing.T) {
		testCases := map[product.Status]string{
			product.Unknown:   "Unknown",
			product.Ordered:   "Ordered",
			product.Purchased: "Purchased",
			product.Received:  "Received",
			product.Delivered: "Delivered",
			product.Cancelled: "Cancelled",
		}

		for status, expected := range testCases {
			assert.Equal(t, expected, status.String())
		}
	})

	t.Run("should return Unknown for out of range values", func(t *testing.T) {
		assert.Equal(t, "Unknown", product.Status(42).String())
		assert.Equal(t, "Unknown", product.Status(-1).String())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Cancelled as terminal", func(t *testing.T) {
		assert.True(t, product.Cancelled.IsTerminal())
	})

	t.Run("should report pipeline statuses as not terminal", func(t *testing.T) {
		for _, status := range []product.Status{
			product.Ordered,
			product.Purchased,
			product.Received,
			product.Delivered,
		} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestDetermineStatus(t *testing.T) {
	t.Run("should walk the pipeline as thresholds are satisfied", func(t *testing.T) {
		testCases := []struct {
			name      string
			purchased int
			received  int
			delivered int
			requested int
			expected  product.Status
		}{
			{"nothing covered", 0, 0, 0, 10, product.Ordered},
			{"partial purchase", 7, 0, 0, 10, product.Ordered},
			{"purchase covers requested", 10, 0, 0, 10, product.Purchased},
			{"purchase exceeds requested", 15, 0, 0, 10, product.Purchased},
			{"purchased and received covered", 10, 10, 0, 10, product.Received},
			{"partial receipt", 10, 5, 0, 10, product.Purchased},
			{"fully delivered", 10, 10, 10, 10, product.Delivered},
			{"partial delivery", 10, 10, 4, 10, product.Received},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				status := product.DetermineStatus(
					tc.purchased, tc.received, tc.delivered, tc.requested, product.Ordered,
				)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should gate later stages on earlier thresholds", func(t *testing.T) {
		// Receipt and delivery quantities alone never advance the status:
		// without a covering purchase the product stays Ordered.
		status := product.DetermineStatus(0, 10, 10, 10, product.Ordered)
		assert.Equal(t, product.Ordered, status)

		// A covering delivery without a covering receipt stops at Purchased.
		status = product.DetermineStatus(10, 3, 10, 10, product.Ordered)
		assert.Equal(t, product.Purchased, status)
	})

	t.Run("should revert when a refund drops the purchased quantity", func(t *testing.T) {
		before := product.DetermineStatus(10, 0, 0, 10, product.Ordered)
		require.Equal(t, product.Purchased, before)

		after := product.DetermineStatus(7, 0, 0, 10, before)
		assert.Equal(t, product.Ordered, after)
	})

	t.Run("should return Ordered when requested amount is not positive", func(t *testing.T) {
		assert.Equal(t, product.Ordered, product.DetermineStatus(5, 5, 5, 0, product.Ordered))
		assert.Equal(t, product.Ordered, product.DetermineStatus(5, 5, 5, -1, product.Ordered))
	})

	t.Run("should keep Cancelled sticky regardless of quantities", func(t *testing.T) {
		assert.Equal(t, product.Cancelled, product.DetermineStatus(10, 10, 10, 10, product.Cancelled))
		assert.Equal(t, product.Cancelled, product.DetermineStatus(0, 0, 0, 10, product.Cancelled))
	})

	t.Run("should be deterministic", func(t *testing.T) {
		first := product.DetermineStatus(10, 10, 3, 10, product.Ordered)
		for range 10 {
			assert.Equal(t, first, product.DetermineStatus(10, 10, 3, 10, product.Ordered))
		}
	})

	t.Run("should not depend on current non-terminal status", func(t *testing.T) {
		for _, current := range []product.Status{
			product.Ordered,
			product.Purchased,
			product.Received,
			product.Delivered,
		} {
			status := product.DetermineStatus(10, 10, 0, 10, current)
			assert.Equal(t, product.Received, status)
		}
	})
}
