package queries_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductReader struct{ mock.Mock }

func (m *MockProductReader) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductReader) Update(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductReader) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductReader) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductReader) GetAllIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockLedgerReader struct{ mock.Mock }

func (m *MockLedgerReader) AddPurchase(ctx context.Context, event *ledger.PurchaseEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockLedgerReader) GetPurchase(ctx context.Context, id kernel.UUID) (*ledger.PurchaseEvent, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*ledger.PurchaseEvent), args.Error(1)
}

func (m *MockLedgerReader) UpdatePurchase(ctx context.Context, event *ledger.PurchaseEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockLedgerReader) AddReceipt(ctx context.Context, event *ledger.ReceiptEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockLedgerReader) AddDelivery(ctx context.Context, event *ledger.DeliveryEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockLedgerReader) RemovePurchase(ctx context.Context, productID, eventID kernel.UUID) error {
	args := m.Called(ctx, productID, eventID)
	return args.Error(0)
}

func (m *MockLedgerReader) RemoveReceipt(ctx context.Context, productID, eventID kernel.UUID) error {
	args := m.Called(ctx, productID, eventID)
	return args.Error(0)
}

func (m *MockLedgerReader) RemoveDelivery(ctx context.Context, productID, eventID kernel.UUID) error {
	args := m.Called(ctx, productID, eventID)
	return args.Error(0)
}

func (m *MockLedgerReader) TotalsFor(ctx context.Context, productID kernel.UUID) (ledger.Totals, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(ledger.Totals), args.Error(1)
}

func TestAuditProductQueryHandler_Handle_ConsistentProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	query, err := queries.NewAuditProductQuery(productID)
	require.NoError(t, err)

	aggregate, err := product.RestoreProduct(productID, "Espresso machine", 10, 10, 5, 0, product.Purchased)
	require.NoError(t, err)

	products := new(MockProductReader)
	ledgerReader := new(MockLedgerReader)
	products.On("Get", mock.Anything, productID).Return(aggregate, nil).Once()
	ledgerReader.On("TotalsFor", mock.Anything, productID).
		Return(ledger.Totals{Purchased: 10, Received: 5}, nil).Once()

	h := queries.NewAuditProductQueryHandler(products, ledgerReader)
	report, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.True(t, report.IsConsistent())
	assert.True(t, report.ProductID.IsEqual(productID))

	// Auditing writes nothing.
	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	products.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	products.AssertExpectations(t)
	ledgerReader.AssertExpectations(t)
}

func TestAuditProductQueryHandler_Handle_ReportsDrift(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	query, err := queries.NewAuditProductQuery(productID)
	require.NoError(t, err)

	aggregate, err := product.RestoreProduct(productID, "Espresso machine", 10, 0, 0, 0, product.Ordered)
	require.NoError(t, err)

	products := new(MockProductReader)
	ledgerReader := new(MockLedgerReader)
	products.On("Get", mock.Anything, productID).Return(aggregate, nil).Once()
	ledgerReader.On("TotalsFor", mock.Anything, productID).
		Return(ledger.Totals{Purchased: 10}, nil).Once()

	h := queries.NewAuditProductQueryHandler(products, ledgerReader)
	report, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.False(t, report.IsConsistent())
	require.Len(t, report.Discrepancies, 2)
	assert.Equal(t, "amountPurchased", report.Discrepancies[0].Field)
	assert.Equal(t, "status", report.Discrepancies[1].Field)

	// The underlying aggregate is untouched: audit and repair share the
	// computation but only a reconcile command mutates.
	assert.Equal(t, 0, aggregate.AmountPurchased())
	assert.Equal(t, product.Ordered, aggregate.Status())
}

func TestAuditProductQueryHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	query, err := queries.NewAuditProductQuery(productID)
	require.NoError(t, err)

	products := new(MockProductReader)
	ledgerReader := new(MockLedgerReader)
	products.On("Get", mock.Anything, productID).
		Return(nil, errs.NewObjectNotFoundError("product", productID.String())).Once()

	h := queries.NewAuditProductQueryHandler(products, ledgerReader)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	ledgerReader.AssertNotCalled(t, "TotalsFor", mock.Anything, mock.Anything)
}

func TestAuditProductQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.AuditProductQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAuditProductQueryIsNotConstructed)
}
