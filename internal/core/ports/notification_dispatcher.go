package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
)

// NotificationType classifies notifications for the receiving client.
type NotificationType string

const (
	// NotificationOrderUpdate signals an order lifecycle change to the consumer.
	NotificationOrderUpdate NotificationType = "order_update"
	// NotificationPickupUpdate signals a pickup change to the driver or consumer.
	NotificationPickupUpdate NotificationType = "pickup_update"
	// NotificationProductUpdate signals a catalog change to the farmer.
	NotificationProductUpdate NotificationType = "product_update"
)

// Notification is the fire-and-forget event payload handed to the dispatcher.
type Notification struct {
	UserID      kernel.UserID
	Message     string
	Type        NotificationType
	ReferenceID string
}

// NotificationDispatcher is the external collaborator receiving events from
// the fulfillment workflow. Dispatch happens after the triggering transaction
// committed; a dispatch failure is logged by the caller and never rolls the
// primary operation back.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification Notification) error
}
