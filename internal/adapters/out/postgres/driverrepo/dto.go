// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence. It implements the repository pattern for the driver
// aggregate, converting between domain entities and database rows.
package driverrepo

import (
	"farmmarket/internal/core/domain/model/driver"
	"farmmarket/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The primary key is the external user identity; drivers carry no
// identity of their own.
type DriverDTO struct {
	UserID           int64   `gorm:"type:bigint;primaryKey"`
	Availability     int     `gorm:"type:int;not null;index"`
	VehicleType      string  `gorm:"type:varchar(100);not null"`
	MaxLoadCapacity  int     `gorm:"type:int;not null"`
	CurrentLocation  string  `gorm:"type:varchar(255)"`
	CompletedPickups int     `gorm:"type:int;not null;default:0"`
	Rating           float64 `gorm:"type:numeric(4,2);not null;default:0"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		UserID:           aggregate.UserID().Int64(),
		Availability:     int(aggregate.Availability()),
		VehicleType:      aggregate.VehicleType(),
		MaxLoadCapacity:  aggregate.MaxLoadCapacity(),
		CurrentLocation:  aggregate.CurrentLocation(),
		CompletedPickups: aggregate.CompletedPickups(),
		Rating:           aggregate.Rating(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	userID, err := kernel.NewUserID(dto.UserID)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		userID,
		driver.Availability(dto.Availability),
		dto.VehicleType,
		dto.MaxLoadCapacity,
		dto.CurrentLocation,
		dto.CompletedPickups,
		dto.Rating,
	)
}
