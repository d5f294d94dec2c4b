package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves a single order with its line items.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates an order detail query.
func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailsLineItem is one line of the order detail view. ProductID is
// nil when the product was deleted after purchase; quantity and the price
// snapshot survive.
type GetOrderDetailsLineItem struct {
	ProductID *kernel.UUID
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// GetOrderDetailsQueryResponse is the full order detail view.
type GetOrderDetailsQueryResponse struct {
	ID            kernel.UUID
	ConsumerID    int64
	Status        order.Status
	OrderDate     time.Time
	PickupDetails string
	Items         []GetOrderDetailsLineItem
	Total         float64
}
