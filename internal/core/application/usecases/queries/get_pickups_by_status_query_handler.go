package queries

import (
	"context"
	"database/sql"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickupsByStatusQueryHandler lists pickups from the database.
type GetPickupsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupsByStatusQueryHandler creates a handler for pickup list queries.
func NewGetPickupsByStatusQueryHandler(db *gorm.DB) GetPickupsByStatusQueryHandler {
	return GetPickupsByStatusQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by pickup date with
// unscheduled pickups last.
func (h GetPickupsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPickupsByStatusQuery,
) ([]GetPickupsByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	querySQL := `
		SELECT
			id,
			order_id,
			status,
			pickup_date,
			location,
			assigned_to,
			notes
		FROM pickups
	`
	args := make([]any, 0, 1)

	if status := query.Status(); status != nil {
		querySQL += " WHERE status = ?"
		args = append(args, int(*status))
	}

	querySQL += " ORDER BY pickup_date ASC NULLS LAST, id"

	rows, err := h.db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pickups := make([]GetPickupsByStatusQueryResponse, 0)

	for rows.Next() {
		var resp GetPickupsByStatusQueryResponse
		var id uuid.UUID
		var orderID uuid.NullUUID
		var status int
		var pickupDate sql.NullTime
		var assignedTo sql.NullInt64

		err = rows.Scan(&id, &orderID, &status, &pickupDate, &resp.Location, &assignedTo, &resp.Notes)
		if err != nil {
			return nil, err
		}

		pickupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = pickupID
		resp.Status = pickup.Status(status)

		if orderID.Valid {
			oid, oidErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if oidErr != nil {
				return nil, oidErr
			}
			resp.OrderID = &oid
		}
		if pickupDate.Valid {
			date := pickupDate.Time
			resp.PickupDate = &date
		}
		if assignedTo.Valid {
			driverID := assignedTo.Int64
			resp.AssignedTo = &driverID
		}

		pickups = append(pickups, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
