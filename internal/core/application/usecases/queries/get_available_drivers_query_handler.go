package queries

import (
	"context"

	"farmmarket/internal/core/domain/model/driver"

	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler lists dispatchable drivers for the
// assignment view.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for available driver
// queries.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the query. Highest rated drivers come first so dispatch
// staff see the strongest candidates at the top.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			vehicle_type,
			max_load_capacity,
			current_location,
			completed_pickups,
			rating
		FROM drivers
		WHERE availability = ?
		ORDER BY rating DESC, user_id
	`, int(driver.Available)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]GetAvailableDriversQueryResponse, 0)

	for rows.Next() {
		var resp GetAvailableDriversQueryResponse

		err = rows.Scan(
			&resp.UserID,
			&resp.VehicleType,
			&resp.MaxLoadCapacity,
			&resp.CurrentLocation,
			&resp.CompletedPickups,
			&resp.Rating,
		)
		if err != nil {
			return nil, err
		}

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
