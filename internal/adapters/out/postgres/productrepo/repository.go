package productrepo

import (
	"context"
	"errors"

	"farmmarket/internal/adapters/out/postgres/pgerr"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product with its category mappings to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add product", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing product to the database and replaces the stored
// category mapping set with the aggregate's current one.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("farmer_id", "price", "stock", "status", "unit_type", "image_ref").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Wrap("update product", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	if err := r.replaceCategoryRows(ctx, dto.ID, dto.Categories); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a product with its category associations by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).Preload("Categories").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, pgerr.Wrap("get product", err)
	}

	return toDomain(dto)
}

// DecrementStock atomically reduces stock by qty. The guarded UPDATE only
// matches rows with enough stock, so the row lock serializes concurrent
// orders and the level can never go negative.
func (r *GormProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, qty int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValidationError("quantity")
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND stock >= ?", id.Bytes(), qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return pgerr.Wrap("decrement stock", result.Error)
	}

	if result.RowsAffected == 0 {
		// Either the product is gone or the stock is short; look to tell apart.
		var dto ProductDTO
		if err := r.db.WithContext(ctx).Select("stock").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("product", id.String())
			}
			return pgerr.Wrap("decrement stock", err)
		}
		return errs.NewInsufficientStockError(id.String(), qty, dto.Stock)
	}

	return nil
}

// RestoreStock atomically returns previously decremented stock, e.g. when a
// stock-holding order is cancelled.
func (r *GormProductRepository) RestoreStock(ctx context.Context, id kernel.UUID, qty int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValidationError("quantity")
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty))
	if result.Error != nil {
		return pgerr.Wrap("restore stock", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

// ReplaceCategories swaps the stored category mapping set in one operation.
// The non-empty invariant is the aggregate's concern; the repository writes
// whatever validated set it receives.
func (r *GormProductRepository) ReplaceCategories(ctx context.Context, id kernel.UUID, categoryIDs []kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	productID := id.Bytes()
	mappings := make([]ProductCategoryDTO, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		if err := categoryID.Validate(); err != nil {
			return err
		}
		mappings = append(mappings, ProductCategoryDTO{
			ProductID:  productID,
			CategoryID: categoryID.Bytes(),
		})
	}

	return r.replaceCategoryRows(ctx, productID, mappings)
}

// Delete removes the product row with its category and production-area
// mappings, and nullifies product references held by feedback rows. Line-item
// nullification runs through the order repository in the same transaction.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	productID := id.Bytes()
	db := r.db.WithContext(ctx)

	if err := db.Model(&FeedbackDTO{}).
		Where("product_id = ?", productID).
		Update("product_id", nil).Error; err != nil {
		return pgerr.Wrap("nullify feedback references", err)
	}

	if err := db.Delete(&ProductCategoryDTO{}, "product_id = ?", productID).Error; err != nil {
		return pgerr.Wrap("delete category mappings", err)
	}

	if err := db.Delete(&ProductProductionAreaDTO{}, "product_id = ?", productID).Error; err != nil {
		return pgerr.Wrap("delete production area mappings", err)
	}

	result := db.Delete(&ProductDTO{}, "id = ?", productID)
	if result.Error != nil {
		return pgerr.Wrap("delete product", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

func (r *GormProductRepository) replaceCategoryRows(ctx context.Context, productID uuid.UUID, mappings []ProductCategoryDTO) error {
	db := r.db.WithContext(ctx)

	if err := db.Delete(&ProductCategoryDTO{}, "product_id = ?", productID).Error; err != nil {
		return pgerr.Wrap("replace categories", err)
	}

	if len(mappings) == 0 {
		return nil
	}

	if err := db.Create(&mappings).Error; err != nil {
		return pgerr.Wrap("replace categories", err)
	}

	return nil
}
