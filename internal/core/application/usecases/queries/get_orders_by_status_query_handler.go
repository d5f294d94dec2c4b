package queries

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler lists orders with computed totals straight
// from the database, bypassing aggregate reconstruction for read performance.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for order list queries.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Totals sum the line-item snapshots, so orders
// whose products were since deleted or repriced keep their historical value.
// Results are sorted by order date, newest first.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	querySQL := `
		SELECT
			o.id,
			o.consumer_id,
			o.status,
			o.order_date,
			COALESCE(SUM(li.quantity * li.unit_price), 0) AS total
		FROM orders o
		LEFT JOIN order_line_items li ON li.order_id = o.id
		WHERE 1 = 1
	`
	args := make([]any, 0, 3)

	if status := query.Status(); status != nil {
		querySQL += " AND o.status = ?"
		args = append(args, int(*status))
	}
	if from := query.From(); from != nil {
		querySQL += " AND o.order_date >= ?"
		args = append(args, *from)
	}
	if to := query.To(); to != nil {
		querySQL += " AND o.order_date <= ?"
		args = append(args, *to)
	}

	querySQL += `
		GROUP BY o.id, o.consumer_id, o.status, o.order_date
		ORDER BY o.order_date DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	for rows.Next() {
		var resp GetOrdersByStatusQueryResponse
		var id uuid.UUID
		var status int

		if err = rows.Scan(&id, &resp.ConsumerID, &status, &resp.OrderDate, &resp.Total); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
