// Package notify implements the notification dispatcher port. The current
// implementation writes structured log records; swapping in a push or email
// channel only touches this package.
package notify

import (
	"context"
	"log/slog"

	"farmmarket/internal/core/ports"
)

// SlogNotificationDispatcher emits notifications as structured log records.
// Dispatch is fire and forget from the core's point of view: callers log a
// failure and move on, the triggering operation never rolls back.
type SlogNotificationDispatcher struct {
	logger *slog.Logger
}

// NewSlogNotificationDispatcher creates a dispatcher writing to the given logger.
func NewSlogNotificationDispatcher(logger *slog.Logger) *SlogNotificationDispatcher {
	return &SlogNotificationDispatcher{logger: logger}
}

// Dispatch records the notification. Never fails; the error return exists for
// implementations with a real delivery channel.
func (d *SlogNotificationDispatcher) Dispatch(ctx context.Context, notification ports.Notification) error {
	d.logger.InfoContext(ctx, "notification dispatched",
		slog.Int64("user_id", notification.UserID.Int64()),
		slog.String("type", string(notification.Type)),
		slog.String("reference_id", notification.ReferenceID),
		slog.String("message", notification.Message),
	)
	return nil
}
