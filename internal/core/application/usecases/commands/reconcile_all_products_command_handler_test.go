package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileAllProductsCommandHandler_Handle_ReportOnly(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReconcileAllProductsCommand(false)

	consistentID := kernel.NewUUID()
	driftedID := kernel.NewUUID()

	consistent, err := product.RestoreProduct(consistentID, "Espresso machine", 10, 10, 0, 0, product.Purchased)
	require.NoError(t, err)
	drifted, err := product.RestoreProduct(driftedID, "Grinder", 5, 0, 0, 0, product.Ordered)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("LedgerRepository").Return(ledgerRepo)
	productRepo.On("GetAllIDs", mock.Anything).Return([]kernel.UUID{consistentID, driftedID}, nil).Once()
	productRepo.On("Get", mock.Anything, consistentID).Return(consistent, nil).Once()
	productRepo.On("Get", mock.Anything, driftedID).Return(drifted, nil).Once()
	ledgerRepo.On("TotalsFor", mock.Anything, consistentID).Return(ledger.Totals{Purchased: 10}, nil).Once()
	ledgerRepo.On("TotalsFor", mock.Anything, driftedID).Return(ledger.Totals{Purchased: 5}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileAllProductsCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inspected)
	assert.Equal(t, 1, result.Consistent)
	assert.Equal(t, 1, result.Inconsistent)
	assert.Equal(t, 0, result.Fixed)
	assert.Equal(t, 0, result.Failed)

	// Report-only mode never locks or writes.
	productRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	productRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReconcileAllProductsCommandHandler_Handle_FixDrift(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReconcileAllProductsCommand(true)

	driftedID := kernel.NewUUID()
	drifted, err := product.RestoreProduct(driftedID, "Grinder", 5, 0, 0, 0, product.Ordered)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("LedgerRepository").Return(ledgerRepo)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	productRepo.On("GetAllIDs", mock.Anything).Return([]kernel.UUID{driftedID}, nil).Once()
	productRepo.On("GetForUpdate", mock.Anything, driftedID).Return(drifted, nil).Once()
	ledgerRepo.On("TotalsFor", mock.Anything, driftedID).Return(ledger.Totals{Purchased: 5}, nil).Once()
	productRepo.On("Update", mock.Anything, drifted).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewReconcileAllProductsCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inspected)
	assert.Equal(t, 1, result.Inconsistent)
	assert.Equal(t, 1, result.Fixed)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, product.Purchased, drifted.Status())
	productRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileAllProductsCommandHandler_Handle_CountsFailures(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReconcileAllProductsCommand(false)

	missingID := kernel.NewUUID()
	okID := kernel.NewUUID()
	ok, err := product.RestoreProduct(okID, "Espresso machine", 10, 10, 0, 0, product.Purchased)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("LedgerRepository").Return(ledgerRepo)
	productRepo.On("GetAllIDs", mock.Anything).Return([]kernel.UUID{missingID, okID}, nil).Once()
	productRepo.On("Get", mock.Anything, missingID).
		Return(nil, errs.NewObjectNotFoundError("product", missingID.String())).Once()
	productRepo.On("Get", mock.Anything, okID).Return(ok, nil).Once()
	ledgerRepo.On("TotalsFor", mock.Anything, okID).Return(ledger.Totals{Purchased: 10}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileAllProductsCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inspected)
	assert.Equal(t, 1, result.Consistent)
	assert.Equal(t, 1, result.Failed)
	productRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}
