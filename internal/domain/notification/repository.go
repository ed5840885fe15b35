package notification

import (
	"context"
)

// Repository defines the persistence operations for notifications
type Repository interface {
	// Create persists a new notification and fills in the store-assigned id
	Create(ctx context.Context, n *Notification) error

	// ListUnread returns unread notifications, newest first
	ListUnread(ctx context.Context) ([]*Notification, error)

	// MarkRead sets is_read on a notification, returning ErrNotFound when the
	// id does not exist. Marking an already-read notification is a no-op.
	MarkRead(ctx context.Context, id int64) error

	// HasUnreadForProduct reports whether an unread notification of the given
	// type referencing the product already exists
	HasUnreadForProduct(ctx context.Context, typ Type, productID int64) (bool, error)

	// HasUnreadOfType reports whether any unread notification of the given
	// type exists (singleton checks)
	HasUnreadOfType(ctx context.Context, typ Type) (bool, error)

	// DeleteUnreadOfType removes all unread notifications of the given type
	DeleteUnreadOfType(ctx context.Context, typ Type) error
}
