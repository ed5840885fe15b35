package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/notification"
)

// NotificationRepository implements notification.Repository over PostgreSQL
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &NotificationRepository{db: db}
}

// Create implements notification.Repository.Create
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO notifications (title, message, type, priority, is_read, customer_id, bill_id, product_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		n.Title, n.Message, n.Type, n.Priority, n.IsRead, n.CustomerID, n.BillID, n.ProductID, n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListUnread implements notification.Repository.ListUnread
func (r *NotificationRepository) ListUnread(ctx context.Context) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, message, type, priority, is_read, customer_id, bill_id, product_id, created_at
		 FROM notifications WHERE is_read = FALSE ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		n := &notification.Notification{}
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.IsRead,
			&n.CustomerID, &n.BillID, &n.ProductID, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead implements notification.Repository.MarkRead
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}

// HasUnreadForProduct implements notification.Repository.HasUnreadForProduct
func (r *NotificationRepository) HasUnreadForProduct(ctx context.Context, typ notification.Type, productID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM notifications WHERE is_read = FALSE AND type = $1 AND product_id = $2)`,
		typ, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product notification: %w", err)
	}
	return exists, nil
}

// HasUnreadOfType implements notification.Repository.HasUnreadOfType
func (r *NotificationRepository) HasUnreadOfType(ctx context.Context, typ notification.Type) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM notifications WHERE is_read = FALSE AND type = $1)`,
		typ).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check notification type: %w", err)
	}
	return exists, nil
}

// DeleteUnreadOfType implements notification.Repository.DeleteUnreadOfType
func (r *NotificationRepository) DeleteUnreadOfType(ctx context.Context, typ notification.Type) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM notifications WHERE is_read = FALSE AND type = $1`, typ)
	if err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}
