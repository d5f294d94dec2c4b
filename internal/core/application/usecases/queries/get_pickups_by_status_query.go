package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/pickup"
	"farmmarket/internal/pkg/guard"
)

var ErrGetPickupsByStatusQueryIsNotConstructed = errors.New(
	"GetPickupsByStatusQuery must be created via NewGetPickupsByStatusQuery constructor",
)

// GetPickupsByStatusQuery lists pickups, optionally filtered by status.
type GetPickupsByStatusQuery struct {
	status *pickup.Status

	guard guard.ConstructorGuard
}

// NewGetPickupsByStatusQuery creates a pickup list query. A nil status means
// every status.
func NewGetPickupsByStatusQuery(status *pickup.Status) (GetPickupsByStatusQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetPickupsByStatusQuery{}, err
		}
	}

	return GetPickupsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupsByStatusQueryIsNotConstructed)
}

// Status returns the status filter, nil for all statuses.
func (q GetPickupsByStatusQuery) Status() *pickup.Status {
	return q.status
}

// GetPickupsByStatusQueryResponse is one pickup row. OrderID is nil for
// standalone market-stand pickups, AssignedTo is nil until a driver is
// assigned, and PickupDate is nil while the handoff is unscheduled.
type GetPickupsByStatusQueryResponse struct {
	ID         kernel.UUID
	OrderID    *kernel.UUID
	Status     pickup.Status
	PickupDate *time.Time
	Location   string
	AssignedTo *int64
	Notes      string
}
