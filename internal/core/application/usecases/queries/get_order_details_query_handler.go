package queries

import (
	"context"
	"database/sql"
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler reads a single order with its line items.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query. An unknown order ID returns an ObjectNotFound
// error rather than an empty response.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	var resp GetOrderDetailsQueryResponse
	var id uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			consumer_id,
			status,
			order_date,
			pickup_details
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &resp.ConsumerID, &status, &resp.OrderDate, &resp.PickupDetails)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status)
	resp.Items = make([]GetOrderDetailsLineItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderDetailsLineItem
		var productID uuid.NullUUID

		if err = rows.Scan(&productID, &item.Quantity, &item.UnitPrice); err != nil {
			return GetOrderDetailsQueryResponse{}, err
		}

		if productID.Valid {
			pid, pidErr := kernel.UUIDFromBytes(productID.UUID[:])
			if pidErr != nil {
				return GetOrderDetailsQueryResponse{}, pidErr
			}
			item.ProductID = &pid
		}

		item.LineTotal = float64(item.Quantity) * item.UnitPrice
		resp.Total += item.LineTotal
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return resp, nil
}
