package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPurchaseCommandHandler() commands.RecordPurchaseCommandHandler {
	return commands.NewRecordPurchaseCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRefundPurchaseCommandHandler() commands.RefundPurchaseCommandHandler {
	return commands.NewRefundPurchaseCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRecordReceiptCommandHandler() commands.RecordReceiptCommandHandler {
	return commands.NewRecordReceiptCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRecordDeliveryCommandHandler() commands.RecordDeliveryCommandHandler {
	return commands.NewRecordDeliveryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRemoveLedgerEntryCommandHandler() commands.RemoveLedgerEntryCommandHandler {
	return commands.NewRemoveLedgerEntryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCancelProductCommandHandler() commands.CancelProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelProductCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileProductCommandHandler() commands.ReconcileProductCommandHandler {
	return commands.NewReconcileProductCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateReconcileAllProductsCommandHandler() commands.ReconcileAllProductsCommandHandler {
	return commands.NewReconcileAllProductsCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuditProductQueryHandler() queries.AuditProductQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewAuditProductQueryHandler(uow.ProductRepository(), uow.LedgerRepository())
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
