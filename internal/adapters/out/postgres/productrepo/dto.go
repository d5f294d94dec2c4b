// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence. Besides the product aggregate it owns the mapping
// and reference tables that product deletion has to clean up.
package productrepo

import (
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Category mappings live in a child table.
type ProductDTO struct {
	ID         uuid.UUID            `gorm:"type:uuid;primaryKey"`
	FarmerID   int64                `gorm:"type:bigint;not null;index"`
	Price      float64              `gorm:"type:numeric(12,2);not null"`
	Stock      int                  `gorm:"type:int;not null"`
	Status     int                  `gorm:"type:int;not null;index"`
	UnitType   string               `gorm:"type:varchar(50);not null"`
	ImageRef   string               `gorm:"type:varchar(512)"`
	Categories []ProductCategoryDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// ProductCategoryDTO maps a product to one of its categories.
type ProductCategoryDTO struct {
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for product category mappings.
func (ProductCategoryDTO) TableName() string {
	return "product_categories"
}

// ProductProductionAreaDTO links a product to a production area. Rows are
// written by the production reporting collaborator; this repository only
// removes them when the product goes away.
type ProductProductionAreaDTO struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AreaID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for production area mappings.
func (ProductProductionAreaDTO) TableName() string {
	return "product_production_areas"
}

// FeedbackDTO is a consumer review row. Reviews outlive their product: on
// product deletion the reference is nullified, never cascaded.
type FeedbackDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID  *uuid.UUID `gorm:"type:uuid;index"`
	ConsumerID int64      `gorm:"type:bigint;not null;index"`
	Rating     int        `gorm:"type:int;not null"`
	Comment    string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for feedback entities.
func (FeedbackDTO) TableName() string {
	return "feedback"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	productID := aggregate.ID().Bytes()
	categories := make([]ProductCategoryDTO, 0, len(aggregate.CategoryIDs()))

	for _, categoryID := range aggregate.CategoryIDs() {
		categories = append(categories, ProductCategoryDTO{
			ProductID:  productID,
			CategoryID: categoryID.Bytes(),
		})
	}

	return ProductDTO{
		ID:         productID,
		FarmerID:   aggregate.FarmerID().Int64(),
		Price:      aggregate.Price().Amount(),
		Stock:      aggregate.Stock(),
		Status:     int(aggregate.Status()),
		UnitType:   aggregate.UnitType(),
		ImageRef:   aggregate.ImageRef(),
		Categories: categories,
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.NewUserID(dto.FarmerID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]kernel.UUID, 0, len(dto.Categories))
	for _, mapping := range dto.Categories {
		categoryID, categoryErr := kernel.UUIDFromBytes(mapping.CategoryID[:])
		if categoryErr != nil {
			return nil, categoryErr
		}
		categoryIDs = append(categoryIDs, categoryID)
	}

	return product.RestoreProduct(
		id,
		farmerID,
		price,
		dto.Stock,
		product.Status(dto.Status),
		dto.UnitType,
		dto.ImageRef,
		categoryIDs,
	)
}
