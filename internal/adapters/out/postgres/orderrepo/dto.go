// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in a child table and are loaded together with the order row.
type OrderDTO struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ConsumerID    int64         `gorm:"type:bigint;not null;index"`
	Status        int           `gorm:"type:int;not null;index"`
	OrderDate     time.Time     `gorm:"type:timestamptz;not null"`
	PickupDetails string        `gorm:"type:text"`
	Items         []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one line of an order. The product reference is
// nullable: deleting a product nullifies it while the quantity and the price
// snapshot stay behind for historical totals.
type LineItemDTO struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int        `gorm:"type:int;not null"`
	UnitPrice float64    `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]LineItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		var productID *uuid.UUID
		if id := item.ProductID(); id != nil {
			raw := id.Bytes()
			productID = &raw
		}

		items = append(items, LineItemDTO{
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		ConsumerID:    aggregate.ConsumerID().Int64(),
		Status:        int(aggregate.Status()),
		OrderDate:     aggregate.OrderDate(),
		PickupDetails: aggregate.PickupDetails(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	consumerID, err := kernel.NewUserID(dto.ConsumerID)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		consumerID,
		order.Status(dto.Status),
		dto.OrderDate,
		dto.PickupDetails,
		items,
	)
}

// lineItemToDomain converts a line item DTO to its domain value object.
func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	var productID *kernel.UUID
	if dto.ProductID != nil {
		pID, err := kernel.UUIDFromBytes((*dto.ProductID)[:])
		if err != nil {
			return order.LineItem{}, err
		}
		productID = &pID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(productID, dto.Quantity, unitPrice)
}
