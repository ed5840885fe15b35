package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/notification"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/product"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// expiryWindowDays is how far ahead the expiry rule looks
const expiryWindowDays = 7

// urgentExpiryDays is the cutoff below which an expiry alert becomes urgent
const urgentExpiryDays = 3

// AlertService runs the on-demand inventory and expiry scans and manages the
// notification lifecycle. Scans are idempotent: a condition that is already
// covered by an unread notification produces nothing new, and a condition
// that clears leaves its old notification unread until someone marks it.
type AlertService struct {
	products      product.Repository
	notifications notification.Repository
	logger        logger.Logger

	now func() time.Time
}

// NewAlertService creates a new AlertService
func NewAlertService(products product.Repository, notifications notification.Repository, log logger.Logger) *AlertService {
	return &AlertService{
		products:      products,
		notifications: notifications,
		logger:        log,
		now:           time.Now,
	}
}

// RunScan evaluates the low-stock, expiry and singleton rules, creating at
// most one unread notification per triggering condition
func (s *AlertService) RunScan(ctx context.Context) error {
	if err := s.scanLowStock(ctx); err != nil {
		return err
	}
	if err := s.scanExpiry(ctx); err != nil {
		return err
	}
	if err := s.ensureSingleton(ctx, notification.TypeSubscription, notification.PriorityMedium,
		"Subscription reminder", "Your Kirana Konnect subscription renews soon. Keep it active to avoid interruptions."); err != nil {
		return err
	}
	return s.ensureSingleton(ctx, notification.TypeBackup, notification.PriorityMedium,
		"Daily backup", "Your business data is backed up daily. Review backup settings anytime.")
}

// ListUnread runs a scan and returns the current unread notifications,
// newest first
func (s *AlertService) ListUnread(ctx context.Context) ([]*notification.Notification, error) {
	if err := s.RunScan(ctx); err != nil {
		return nil, err
	}
	return s.notifications.ListUnread(ctx)
}

// MarkRead marks a notification read. Re-marking an already-read
// notification is a no-op; an unknown id is notification.ErrNotFound.
func (s *AlertService) MarkRead(ctx context.Context, id int64) error {
	return s.notifications.MarkRead(ctx, id)
}

// DisableBackup removes any unread backup notifications and raises a single
// urgent one flagging that backups are off
func (s *AlertService) DisableBackup(ctx context.Context) error {
	if err := s.notifications.DeleteUnreadOfType(ctx, notification.TypeBackup); err != nil {
		return err
	}
	n := notification.New(notification.TypeBackup, notification.PriorityUrgent,
		"Backup disabled", "Automatic backups are turned off. Your business data is no longer protected.")
	return s.notifications.Create(ctx, n)
}

// EnableBackup removes any unread backup notifications; the next scan will
// recreate the normal backup reminder
func (s *AlertService) EnableBackup(ctx context.Context) error {
	return s.notifications.DeleteUnreadOfType(ctx, notification.TypeBackup)
}

func (s *AlertService) scanLowStock(ctx context.Context) error {
	low, err := s.products.ListLowStock(ctx)
	if err != nil {
		return err
	}

	for _, p := range low {
		exists, err := s.notifications.HasUnreadForProduct(ctx, notification.TypeInventory, p.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		n := notification.New(notification.TypeInventory, notification.PriorityHigh,
			fmt.Sprintf("%s is low on stock", p.Name),
			fmt.Sprintf("Only %d left in stock (reorder level %d). Restock soon to avoid losing sales.", p.StockQuantity, p.ReorderLevel))
		n.ProductID = &p.ID
		if err := s.notifications.Create(ctx, n); err != nil {
			return err
		}
		s.logger.Info("low stock alert raised", "product", p.Name, "stock", p.StockQuantity)
	}
	return nil
}

func (s *AlertService) scanExpiry(ctx context.Context) error {
	now := s.now()
	expiring, err := s.products.ListExpiringBefore(ctx, now.AddDate(0, 0, expiryWindowDays))
	if err != nil {
		return err
	}

	for _, p := range expiring {
		exists, err := s.notifications.HasUnreadForProduct(ctx, notification.TypeExpiry, p.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		days := p.DaysToExpiry(now)
		priority := notification.PriorityHigh
		if days <= urgentExpiryDays {
			priority = notification.PriorityUrgent
		}

		var msg string
		if days <= 0 {
			msg = fmt.Sprintf("%s has expired (%s). Remove it from the shelf.", p.Name, p.ExpiryDate.Format("02 Jan 2006"))
		} else {
			msg = fmt.Sprintf("%s expires in %d days (%s). Sell or clear it first.", p.Name, days, p.ExpiryDate.Format("02 Jan 2006"))
		}

		n := notification.New(notification.TypeExpiry, priority,
			fmt.Sprintf("%s is nearing expiry", p.Name), msg)
		n.ProductID = &p.ID
		if err := s.notifications.Create(ctx, n); err != nil {
			return err
		}
		s.logger.Info("expiry alert raised", "product", p.Name, "days_to_expiry", days)
	}
	return nil
}

// ensureSingleton keeps at most one unread notification of the given type
func (s *AlertService) ensureSingleton(ctx context.Context, typ notification.Type, priority notification.Priority, title, message string) error {
	exists, err := s.notifications.HasUnreadOfType(ctx, typ)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.notifications.Create(ctx, notification.New(typ, priority, title, message))
}
