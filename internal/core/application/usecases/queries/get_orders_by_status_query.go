package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves order rows for the administrative list
// view. All filters are optional: a nil status means every status, and the
// date bounds are applied only when set.
//
// Example:
//
//	status := order.Pending
//	query, err := queries.NewGetOrdersByStatusQuery(&status, nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	rows, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct {
	status *order.Status
	from   *time.Time
	to     *time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates an order list query. A from bound after
// the to bound is rejected up front.
func NewGetOrdersByStatusQuery(status *order.Status, from, to *time.Time) (GetOrdersByStatusQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersByStatusQuery{}, err
		}
	}

	if from != nil && to != nil && from.After(*to) {
		return GetOrdersByStatusQuery{}, errs.NewValidationError("date range")
	}

	return GetOrdersByStatusQuery{
		status: status,
		from:   from,
		to:     to,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status filter, nil for all statuses.
func (q GetOrdersByStatusQuery) Status() *order.Status {
	return q.status
}

// From returns the inclusive lower date bound, nil when unbounded.
func (q GetOrdersByStatusQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive upper date bound, nil when unbounded.
func (q GetOrdersByStatusQuery) To() *time.Time {
	return q.to
}

// GetOrdersByStatusQueryResponse is one order row with its total computed
// from the persisted line-item snapshots, not from current catalog prices.
type GetOrdersByStatusQueryResponse struct {
	ID         kernel.UUID
	ConsumerID int64
	Status     order.Status
	OrderDate  time.Time
	Total      float64
}
