package notification

import (
	"context"

	"github.com/google/uuid"
)

// Store persists notifications.
type Store interface {
	// List returns all notifications, newest first.
	List(ctx context.Context) ([]Notification, error)

	// Get retrieves a notification by ID. Returns ErrNotificationNotFound
	// if absent.
	Get(ctx context.Context, id uuid.UUID) (Notification, error)

	// Create inserts a new notification.
	Create(ctx context.Context, n Notification) error

	// Update replaces an existing notification. Returns
	// ErrNotificationNotFound if absent.
	Update(ctx context.Context, n Notification) error

	// Delete removes a notification. Returns ErrNotificationNotFound if
	// absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
