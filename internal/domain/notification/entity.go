package notification

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("notification not found")

// Type classifies what triggered a notification
type Type string

const (
	TypeSubscription Type = "subscription"
	TypeBackup       Type = "backup"
	TypeInventory    Type = "inventory"
	TypeExpiry       Type = "expiry"
	TypePayment      Type = "payment"
	TypeSystem       Type = "system"
)

// Priority ranks how urgently a notification needs attention
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Notification is an alert surfaced to the shopkeeper. The optional entity
// references point at whatever triggered it. A notification stays in the
// active view until marked read.
type Notification struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       Type      `json:"type"`
	Priority   Priority  `json:"priority"`
	IsRead     bool      `json:"is_read"`
	CustomerID *int64    `json:"customer_id,omitempty"`
	BillID     *int64    `json:"bill_id,omitempty"`
	ProductID  *int64    `json:"product_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// New creates an unread notification
func New(typ Type, priority Priority, title, message string) *Notification {
	return &Notification{
		Title:     title,
		Message:   message,
		Type:      typ,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
}

// TimeAgo renders the notification age as a short display string
func (n *Notification) TimeAgo(now time.Time) string {
	d := now.Sub(n.CreatedAt)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}
