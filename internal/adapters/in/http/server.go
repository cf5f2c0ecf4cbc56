package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createProductHandler     commands.CreateProductCommandHandler
	recordPurchaseHandler    commands.RecordPurchaseCommandHandler
	refundPurchaseHandler    commands.RefundPurchaseCommandHandler
	recordReceiptHandler     commands.RecordReceiptCommandHandler
	recordDeliveryHandler    commands.RecordDeliveryCommandHandler
	removeLedgerEntryHandler commands.RemoveLedgerEntryCommandHandler
	cancelProductHandler     commands.CancelProductCommandHandler
	reconcileProductHandler  commands.ReconcileProductCommandHandler
	reconcileAllHandler      commands.ReconcileAllProductsCommandHandler

	// Query handlers
	getProductsHandler  queries.GetProductsQueryHandler
	auditProductHandler queries.AuditProductQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	recordPurchaseHandler commands.RecordPurchaseCommandHandler,
	refundPurchaseHandler commands.RefundPurchaseCommandHandler,
	recordReceiptHandler commands.RecordReceiptCommandHandler,
	recordDeliveryHandler commands.RecordDeliveryCommandHandler,
	removeLedgerEntryHandler commands.RemoveLedgerEntryCommandHandler,
	cancelProductHandler commands.CancelProductCommandHandler,
	reconcileProductHandler commands.ReconcileProductCommandHandler,
	reconcileAllHandler commands.ReconcileAllProductsCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	auditProductHandler queries.AuditProductQueryHandler,
) *Server {
	return &Server{
		createProductHandler:     createProductHandler,
		recordPurchaseHandler:    recordPurchaseHandler,
		refundPurchaseHandler:    refundPurchaseHandler,
		recordReceiptHandler:     recordReceiptHandler,
		recordDeliveryHandler:    recordDeliveryHandler,
		removeLedgerEntryHandler: removeLedgerEntryHandler,
		cancelProductHandler:     cancelProductHandler,
		reconcileProductHandler:  reconcileProductHandler,
		reconcileAllHandler:      reconcileAllHandler,
		getProductsHandler:       getProductsHandler,
		auditProductHandler:      auditProductHandler,
	}
}

// GetProducts handles GET /api/v1/products - retrieves all products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve products")
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{
			Id:              p.ID.Bytes(),
			Name:            p.Name,
			AmountRequested: p.AmountRequested,
			AmountPurchased: p.AmountPurchased,
			AmountReceived:  p.AmountReceived,
			AmountDelivered: p.AmountDelivered,
			Status:          p.Status,
			UpdatedAt:       p.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - creates a new product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var newProduct servers.NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateProductCommand(productID, newProduct.Name, newProduct.AmountRequested)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
		})
	}

	if handleErr := s.createProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to create product")
	}

	return ctx.JSON(http.StatusCreated, servers.EntryCreated{Id: productID.Bytes()})
}

// RecordPurchase handles POST /api/v1/products/{productId}/purchases.
func (s *Server) RecordPurchase(ctx echo.Context, productId openapi_types.UUID) error {
	var newPurchase servers.NewPurchase
	if err := ctx.Bind(&newPurchase); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	purchaseID := kernel.NewUUID()

	cmd, err := commands.NewRecordPurchaseCommand(productID, purchaseID, newPurchase.AmountBought)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase data: " + err.Error(),
		})
	}

	if handleErr := s.recordPurchaseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to record purchase")
	}

	return ctx.JSON(http.StatusCreated, servers.EntryCreated{Id: purchaseID.Bytes()})
}

// RefundPurchase handles POST /api/v1/products/{productId}/purchases/{purchaseId}/refunds.
func (s *Server) RefundPurchase(
	ctx echo.Context,
	productId openapi_types.UUID,
	purchaseId openapi_types.UUID,
) error {
	var newRefund servers.NewRefund
	if err := ctx.Bind(&newRefund); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID, purchaseID, err := twoUUIDs(productId, purchaseId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid identifier",
		})
	}

	cmd, err := commands.NewRefundPurchaseCommand(productID, purchaseID, newRefund.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid refund data: " + err.Error(),
		})
	}

	if handleErr := s.refundPurchaseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to refund purchase")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordReceipt handles POST /api/v1/products/{productId}/receipts.
func (s *Server) RecordReceipt(ctx echo.Context, productId openapi_types.UUID) error {
	var newReceipt servers.NewReceipt
	if err := ctx.Bind(&newReceipt); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	receiptID := kernel.NewUUID()

	cmd, err := commands.NewRecordReceiptCommand(productID, receiptID, newReceipt.AmountReceived)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid receipt data: " + err.Error(),
		})
	}

	if handleErr := s.recordReceiptHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to record receipt")
	}

	return ctx.JSON(http.StatusCreated, servers.EntryCreated{Id: receiptID.Bytes()})
}

// RecordDelivery handles POST /api/v1/products/{productId}/deliveries.
func (s *Server) RecordDelivery(ctx echo.Context, productId openapi_types.UUID) error {
	var newDelivery servers.NewDelivery
	if err := ctx.Bind(&newDelivery); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewRecordDeliveryCommand(productID, deliveryID, newDelivery.AmountDelivered)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	if handleErr := s.recordDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to record delivery")
	}

	return ctx.JSON(http.StatusCreated, servers.EntryCreated{Id: deliveryID.Bytes()})
}

// RemovePurchase handles DELETE /api/v1/products/{productId}/purchases/{entryId}.
func (s *Server) RemovePurchase(
	ctx echo.Context,
	productId openapi_types.UUID,
	entryId openapi_types.UUID,
) error {
	return s.removeEntry(ctx, productId, entryId, commands.PurchaseEntry)
}

// RemoveReceipt handles DELETE /api/v1/products/{productId}/receipts/{entryId}.
func (s *Server) RemoveReceipt(
	ctx echo.Context,
	productId openapi_types.UUID,
	entryId openapi_types.UUID,
) error {
	return s.removeEntry(ctx, productId, entryId, commands.ReceiptEntry)
}

// RemoveDelivery handles DELETE /api/v1/products/{productId}/deliveries/{entryId}.
func (s *Server) RemoveDelivery(
	ctx echo.Context,
	productId openapi_types.UUID,
	entryId openapi_types.UUID,
) error {
	return s.removeEntry(ctx, productId, entryId, commands.DeliveryEntry)
}

// removeEntry is the shared body of the three ledger entry deletion endpoints.
func (s *Server) removeEntry(
	ctx echo.Context,
	productId openapi_types.UUID,
	entryId openapi_types.UUID,
	kind commands.LedgerEntryKind,
) error {
	productID, entryID, err := twoUUIDs(productId, entryId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid identifier",
		})
	}

	cmd, err := commands.NewRemoveLedgerEntryCommand(productID, entryID, kind)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid removal data: " + err.Error(),
		})
	}

	if handleErr := s.removeLedgerEntryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to remove ledger entry")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelProduct handles POST /api/v1/products/{productId}/cancel.
func (s *Server) CancelProduct(ctx echo.Context, productId openapi_types.UUID) error {
	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	cmd, err := commands.NewCancelProductCommand(productID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation data: " + err.Error(),
		})
	}

	if handleErr := s.cancelProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to cancel product")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReconcileProduct handles POST /api/v1/products/{productId}/reconcile.
func (s *Server) ReconcileProduct(ctx echo.Context, productId openapi_types.UUID) error {
	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	cmd, err := commands.NewReconcileProductCommand(productID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid reconciliation data: " + err.Error(),
		})
	}

	result, handleErr := s.reconcileProductHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to reconcile product")
	}

	return ctx.JSON(http.StatusOK, servers.ReconcileOutcome{
		Changed:  result.Changed,
		Previous: stateResponse(result.Previous),
		Current:  stateResponse(result.Current),
	})
}

// CreateReconciliationRun handles POST /api/v1/reconciliation/runs.
func (s *Server) CreateReconciliationRun(ctx echo.Context) error {
	var newRun servers.NewReconciliationRun
	if err := ctx.Bind(&newRun); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewReconcileAllProductsCommand(newRun.FixDrift)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid run data: " + err.Error(),
		})
	}

	result, handleErr := s.reconcileAllHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to run reconciliation sweep")
	}

	return ctx.JSON(http.StatusOK, servers.ReconciliationRun{
		Inspected:    result.Inspected,
		Consistent:   result.Consistent,
		Inconsistent: result.Inconsistent,
		Fixed:        result.Fixed,
		Failed:       result.Failed,
	})
}

// AuditProduct handles GET /api/v1/products/{productId}/audit.
func (s *Server) AuditProduct(ctx echo.Context, productId openapi_types.UUID) error {
	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	query, err := queries.NewAuditProductQuery(productID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid audit data: " + err.Error(),
		})
	}

	report, handleErr := s.auditProductHandler.Handle(ctx.Request().Context(), query)
	if handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to audit product")
	}

	discrepancies := make([]servers.Discrepancy, len(report.Discrepancies))
	for i, d := range report.Discrepancies {
		discrepancies[i] = servers.Discrepancy{
			Field:    d.Field,
			Stored:   d.Stored,
			Computed: d.Computed,
		}
	}

	return ctx.JSON(http.StatusOK, servers.AuditReport{
		ProductId:     report.ProductID.Bytes(),
		Consistent:    report.IsConsistent(),
		Stored:        stateResponse(report.Stored),
		Computed:      stateResponse(report.Computed),
		Discrepancies: discrepancies,
	})
}

// stateResponse converts a domain state snapshot to its API representation.
func stateResponse(state services.State) servers.ProductState {
	return servers.ProductState{
		AmountPurchased: state.AmountPurchased,
		AmountReceived:  state.AmountReceived,
		AmountDelivered: state.AmountDelivered,
		Status:          state.Status.String(),
	}
}

// twoUUIDs converts a pair of path identifiers to domain UUIDs.
func twoUUIDs(first, second openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	firstID, err := kernel.UUIDFromBytes(first[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	secondID, err := kernel.UUIDFromBytes(second[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return firstID, secondID, nil
}

// errorResponse maps domain errors to HTTP status codes. Missing objects map
// to 404, contended or terminal objects to 409, validation failures to 400,
// everything else to 500 with the fallback message.
func errorResponse(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectIsBusy),
		errors.Is(err, product.ErrProductIsCancelled),
		errors.Is(err, ledger.ErrRefundExceedsPurchase),
		errors.Is(err, commands.ErrPurchaseNotOwnedByProduct):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
