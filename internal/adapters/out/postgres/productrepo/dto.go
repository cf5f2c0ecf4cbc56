// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Maps product domain entities to relational database tables with an index on
// status for efficient batch queries.
//
// UpdatedAt is maintained by GORM on every write of the derived fields, giving
// external consumers the last-reconciled timestamp the contract requires.
type ProductDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	AmountRequested int
	AmountPurchased int
	AmountReceived  int
	AmountDelivered int
	Status          int `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		AmountRequested: aggregate.AmountRequested(),
		AmountPurchased: aggregate.AmountPurchased(),
		AmountReceived:  aggregate.AmountReceived(),
		AmountDelivered: aggregate.AmountDelivered(),
		Status:          int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
// Reconstructs the complete aggregate including cached quantities and status
// using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.AmountRequested,
		dto.AmountPurchased,
		dto.AmountReceived,
		dto.AmountDelivered,
		product.Status(dto.Status),
	)
}
