package driverrepo

import (
	"context"
	"errors"

	"farmmarket/internal/adapters/out/postgres/pgerr"
	"farmmarket/internal/core/domain/model/driver"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly registered driver to the database. A second registration
// for the same user hits the primary key and comes back as a ConflictError.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add driver", err)
	}

	r.tracker.TrackAggregate(aggregate.UserID().String(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("user_id = ?", dto.UserID).
		Select("availability", "vehicle_type", "max_load_capacity",
			"current_location", "completed_pickups", "rating").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Wrap("update driver", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.UserID().String())
	}

	r.tracker.TrackAggregate(aggregate.UserID().String(), aggregate)
	return nil
}

// Get retrieves a driver by user identity.
func (r *GormDriverRepository) Get(ctx context.Context, userID kernel.UserID) (*driver.Driver, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", userID.String())
		}
		return nil, pgerr.Wrap("get driver", err)
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a driver with the row locked for the remainder of
// the transaction. Assignment re-checks availability under this lock so two
// pickups cannot claim the same driver concurrently.
func (r *GormDriverRepository) GetForUpdate(ctx context.Context, userID kernel.UserID) (*driver.Driver, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "user_id = ?", userID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", userID.String())
		}
		return nil, pgerr.Wrap("get driver for update", err)
	}

	return toDomain(dto)
}
