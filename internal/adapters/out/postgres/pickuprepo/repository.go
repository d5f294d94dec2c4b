package pickuprepo

import (
	"context"
	"errors"

	"farmmarket/internal/adapters/out/postgres/pgerr"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/pickup"
	"farmmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickupRepository implements PickupRepository using GORM.
type GormPickupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormPickupRepository creates a new GORM pickup repository.
func NewGormPickupRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupRepository {
	return &GormPickupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup to the database. A unique index on order_id turns a
// concurrent double-create for the same order into a ConflictError.
func (r *GormPickupRepository) Add(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add pickup", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing pickup to the database. Save writes all columns so
// that clearing the schedule or notes is persisted too.
func (r *GormPickupRepository) Update(ctx context.Context, aggregate *pickup.Pickup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return pgerr.Wrap("update pickup", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pickup", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a pickup by ID.
func (r *GormPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup", id.String())
		}
		return nil, pgerr.Wrap("get pickup", err)
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the pickup associated with an order. Returns
// ObjectNotFoundError when no pickup exists for the order yet.
func (r *GormPickupRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*pickup.Pickup, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PickupDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup for order", orderID.String())
		}
		return nil, pgerr.Wrap("get pickup by order", err)
	}

	return toDomain(dto)
}

// Delete removes a pickup record. Deletion policy, including the staff
// override for non-pending pickups, is the caller's responsibility.
func (r *GormPickupRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PickupDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Wrap("delete pickup", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pickup", id.String())
	}

	return nil
}
