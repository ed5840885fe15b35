package dto

import (
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/notification"
)

// NotificationResponse is the response body for a notification
type NotificationResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Priority   string    `json:"priority"`
	IsRead     bool      `json:"is_read"`
	CustomerID *int64    `json:"customer_id,omitempty"`
	BillID     *int64    `json:"bill_id,omitempty"`
	ProductID  *int64    `json:"product_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	TimeAgo    string    `json:"time_ago"`
}

// NotificationListResponse is the response body for the unread notification list
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Total int                    `json:"total"`
}

// ToNotificationResponse converts a domain notification to its response form
func ToNotificationResponse(n *notification.Notification, now time.Time) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       string(n.Type),
		Priority:   string(n.Priority),
		IsRead:     n.IsRead,
		CustomerID: n.CustomerID,
		BillID:     n.BillID,
		ProductID:  n.ProductID,
		CreatedAt:  n.CreatedAt,
		TimeAgo:    n.TimeAgo(now),
	}
}

// ToNotificationListResponse converts domain notifications to a list response
func ToNotificationListResponse(notifications []*notification.Notification, now time.Time) NotificationListResponse {
	items := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, ToNotificationResponse(n, now))
	}
	return NotificationListResponse{Items: items, Total: len(items)}
}
