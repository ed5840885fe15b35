package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranakonnect/kirana-konnect/internal/domain/notification"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/product"
)

func newAlertFixture() (*memStore, *AlertService) {
	s := newMemStore()
	svc := NewAlertService(&memProducts{s}, &memNotifications{s}, testLogger())
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return s, svc
}

func seedProduct(t *testing.T, s *memStore, name string, stock, reorder int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, 100)
	require.NoError(t, err)
	p.StockQuantity = stock
	p.ReorderLevel = reorder
	require.NoError(t, (&memProducts{s}).Create(context.Background(), p))
	return p
}

func unreadOfType(s *memStore, typ notification.Type) []*notification.Notification {
	var out []*notification.Notification
	for _, n := range s.notifications {
		if !n.IsRead && n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func TestLowStockScanIsIdempotent(t *testing.T) {
	s, svc := newAlertFixture()
	seedProduct(t, s, "Wheat Flour", 2, 5)
	seedProduct(t, s, "Tata Salt", 0, 10)
	seedProduct(t, s, "Coconut Oil", 25, 5)

	require.NoError(t, svc.RunScan(context.Background()))
	require.NoError(t, svc.RunScan(context.Background()))

	inventory := unreadOfType(s, notification.TypeInventory)
	assert.Len(t, inventory, 2)
	assert.Equal(t, notification.PriorityHigh, inventory[0].Priority)
	assert.Contains(t, inventory[0].Message, "reorder level")
}

func TestLowStockAtThresholdTriggers(t *testing.T) {
	s, svc := newAlertFixture()
	seedProduct(t, s, "Basmati Rice", 5, 5)

	require.NoError(t, svc.RunScan(context.Background()))
	assert.Len(t, unreadOfType(s, notification.TypeInventory), 1)
}

func TestExpiryPriorities(t *testing.T) {
	s, svc := newAlertFixture()
	now := svc.now()

	soon := seedProduct(t, s, "Amul Milk", 20, 5)
	at := now.AddDate(0, 0, 2)
	soon.ExpiryDate = &at

	later := seedProduct(t, s, "Parle-G", 20, 5)
	lt := now.AddDate(0, 0, 6)
	later.ExpiryDate = &lt

	far := seedProduct(t, s, "Coconut Oil", 20, 5)
	ft := now.AddDate(0, 0, 60)
	far.ExpiryDate = &ft

	require.NoError(t, svc.RunScan(context.Background()))

	expiry := unreadOfType(s, notification.TypeExpiry)
	require.Len(t, expiry, 2)

	byProduct := map[int64]*notification.Notification{}
	for _, n := range expiry {
		byProduct[*n.ProductID] = n
	}
	assert.Equal(t, notification.PriorityUrgent, byProduct[soon.ID].Priority)
	assert.Equal(t, notification.PriorityHigh, byProduct[later.ID].Priority)
	assert.Contains(t, byProduct[later.ID].Message, "expires in")
}

func TestSingletonNotifications(t *testing.T) {
	s, svc := newAlertFixture()

	require.NoError(t, svc.RunScan(context.Background()))
	require.NoError(t, svc.RunScan(context.Background()))

	assert.Len(t, unreadOfType(s, notification.TypeSubscription), 1)
	assert.Len(t, unreadOfType(s, notification.TypeBackup), 1)
}

func TestClearedConditionLeavesNotificationStranded(t *testing.T) {
	s, svc := newAlertFixture()
	p := seedProduct(t, s, "Wheat Flour", 2, 5)

	require.NoError(t, svc.RunScan(context.Background()))
	require.Len(t, unreadOfType(s, notification.TypeInventory), 1)

	// restocked; the old alert stays until someone marks it read
	p.StockQuantity = 50
	require.NoError(t, svc.RunScan(context.Background()))
	assert.Len(t, unreadOfType(s, notification.TypeInventory), 1)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	s, svc := newAlertFixture()
	seedProduct(t, s, "Wheat Flour", 2, 5)
	require.NoError(t, svc.RunScan(context.Background()))

	n := unreadOfType(s, notification.TypeInventory)[0]
	require.NoError(t, svc.MarkRead(context.Background(), n.ID))
	require.NoError(t, svc.MarkRead(context.Background(), n.ID))
	assert.True(t, n.IsRead)
}

func TestMarkReadUnknownID(t *testing.T) {
	_, svc := newAlertFixture()
	err := svc.MarkRead(context.Background(), 12345)
	assert.ErrorIs(t, err, notification.ErrNotFound)
}

func TestMarkedReadConditionRaisesAgain(t *testing.T) {
	s, svc := newAlertFixture()
	seedProduct(t, s, "Wheat Flour", 2, 5)

	require.NoError(t, svc.RunScan(context.Background()))
	n := unreadOfType(s, notification.TypeInventory)[0]
	require.NoError(t, svc.MarkRead(context.Background(), n.ID))

	// still low after being acknowledged: a fresh unread alert appears
	require.NoError(t, svc.RunScan(context.Background()))
	assert.Len(t, unreadOfType(s, notification.TypeInventory), 1)
}

func TestDisableBackupReplacesReminder(t *testing.T) {
	s, svc := newAlertFixture()
	require.NoError(t, svc.RunScan(context.Background()))

	require.NoError(t, svc.DisableBackup(context.Background()))

	backup := unreadOfType(s, notification.TypeBackup)
	require.Len(t, backup, 1)
	assert.Equal(t, notification.PriorityUrgent, backup[0].Priority)
	assert.Equal(t, "Backup disabled", backup[0].Title)
}

func TestEnableBackupClearsUnread(t *testing.T) {
	s, svc := newAlertFixture()
	require.NoError(t, svc.DisableBackup(context.Background()))

	require.NoError(t, svc.EnableBackup(context.Background()))
	assert.Empty(t, unreadOfType(s, notification.TypeBackup))
}

func TestListUnreadRunsScan(t *testing.T) {
	s, svc := newAlertFixture()
	seedProduct(t, s, "Wheat Flour", 2, 5)

	list, err := svc.ListUnread(context.Background())
	require.NoError(t, err)

	// inventory alert plus the two singletons
	assert.Len(t, list, 3)
	assert.Len(t, unreadOfType(s, notification.TypeInventory), 1)
}
