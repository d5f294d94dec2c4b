// Package pickuprepo provides data transfer objects and mapping functions for
// pickup persistence. It implements the repository pattern for the pickup
// aggregate, converting between domain entities and database rows.
package pickuprepo

import (
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/pickup"

	"github.com/google/uuid"
)

// PickupDTO represents the database structure for persisting pickup
// aggregates. The order reference carries a unique index: PostgreSQL treats
// NULLs as distinct, so standalone pickups coexist while one order never gets
// two pickups.
type PickupDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Status     int        `gorm:"type:int;not null;index"`
	PickupDate *time.Time `gorm:"type:timestamptz"`
	Location   string     `gorm:"type:varchar(255);not null"`
	AssignedTo *int64     `gorm:"type:bigint;index"`
	Notes      string     `gorm:"type:text"`
}

// TableName specifies the database table name for pickup entities.
func (PickupDTO) TableName() string {
	return "pickups"
}

// fromDomain converts a pickup domain aggregate to its database representation.
// An unscheduled pickup (zero date) maps to a NULL pickup_date.
func fromDomain(aggregate *pickup.Pickup) PickupDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	var assignedTo *int64
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Int64()
		assignedTo = &raw
	}

	var pickupDate *time.Time
	if date := aggregate.PickupDate(); !date.IsZero() {
		pickupDate = &date
	}

	return PickupDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    orderID,
		Status:     int(aggregate.Status()),
		PickupDate: pickupDate,
		Location:   aggregate.Location(),
		AssignedTo: assignedTo,
		Notes:      aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a pickup domain aggregate.
func toDomain(dto PickupDTO) (*pickup.Pickup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	var assignedTo *kernel.UserID
	if dto.AssignedTo != nil {
		driverID, driverErr := kernel.NewUserID(*dto.AssignedTo)
		if driverErr != nil {
			return nil, driverErr
		}
		assignedTo = &driverID
	}

	var pickupDate time.Time
	if dto.PickupDate != nil {
		pickupDate = *dto.PickupDate
	}

	return pickup.RestorePickup(
		id,
		orderID,
		pickup.Status(dto.Status),
		pickupDate,
		dto.Location,
		assignedTo,
		dto.Notes,
	)
}
