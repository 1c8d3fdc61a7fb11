package service

import (
	"context"
	"testing"

	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationService(t *testing.T) (*NotificationService, *testEnv) {
	t.Helper()
	db := setupTestDB(t)
	return NewNotificationService(repository.NewNotificationRepository(db), nil), &testEnv{db: db}
}

// 自己触发自己的事件永远不产生通知
func TestNotifySelfSuppressed(t *testing.T) {
	svc, env := newNotificationService(t)
	alice := createTestUser(t, env.db, "alice")

	require.NoError(t, svc.Notify(alice.ID, alice.ID, model.NotificationTypeLike, nil, nil))

	var count int64
	env.db.Model(&model.Notification{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestNotifyAndUnreadCount(t *testing.T) {
	svc, env := newNotificationService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")
	ctx := context.Background()

	require.NoError(t, svc.Notify(alice.ID, bob.ID, model.NotificationTypeFollow, nil, nil))
	require.NoError(t, svc.Notify(alice.ID, bob.ID, model.NotificationTypeLike, nil, nil))

	count, err := svc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// 别人的未读互不影响
	count, err = svc.UnreadCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// 读取列表即全部置为已读
func TestNotificationListMarksRead(t *testing.T) {
	svc, env := newNotificationService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")
	ctx := context.Background()

	require.NoError(t, svc.Notify(alice.ID, bob.ID, model.NotificationTypeFollow, nil, nil))

	notifications, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "bob", notifications[0].SenderName)
	assert.Equal(t, model.NotificationTypeFollow, notifications[0].Type)

	count, err := svc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// 列表只置读返回的条目，读取之后新到的通知保持未读
func TestNotificationListKeepsLaterUnread(t *testing.T) {
	svc, env := newNotificationService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")
	ctx := context.Background()

	require.NoError(t, svc.Notify(alice.ID, bob.ID, model.NotificationTypeFollow, nil, nil))

	notifications, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	require.NoError(t, svc.Notify(alice.ID, bob.ID, model.NotificationTypeLike, nil, nil))

	count, err := svc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
