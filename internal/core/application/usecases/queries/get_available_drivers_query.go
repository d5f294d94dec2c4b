package queries

import (
	"errors"

	"farmmarket/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves every driver currently open for
// dispatch. Parameterless; busy and offline drivers are excluded.
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query for dispatchable drivers.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// GetAvailableDriversQueryResponse is one dispatchable driver.
type GetAvailableDriversQueryResponse struct {
	UserID           int64
	VehicleType      string
	MaxLoadCapacity  int
	CurrentLocation  string
	CompletedPickups int
	Rating           float64
}
