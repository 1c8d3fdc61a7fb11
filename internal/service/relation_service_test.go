package service

import (
	"testing"

	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRelationService(t *testing.T) (*RelationService, *testEnv) {
	t.Helper()
	db := setupTestDB(t)
	relationRepo := repository.NewRelationRepository(db)
	userRepo := repository.NewUserRepository(db)
	notificationService := NewNotificationService(repository.NewNotificationRepository(db), nil)
	return NewRelationService(relationRepo, userRepo, notificationService), &testEnv{db: db}
}

func TestToggleFollow(t *testing.T) {
	svc, env := newRelationService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	t.Run("follow", func(t *testing.T) {
		result, err := svc.ToggleFollow(alice.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "added", result.Action)
		assert.Equal(t, int64(1), result.Count)

		following, err := svc.IsFollowing(alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, following)

		// 被关注者收到通知
		var notification model.Notification
		require.NoError(t, env.db.Where("recipient_id = ?", bob.ID).First(&notification).Error)
		assert.Equal(t, model.NotificationTypeFollow, notification.Type)
		assert.Equal(t, alice.ID, notification.SenderID)
	})

	t.Run("unfollow", func(t *testing.T) {
		result, err := svc.ToggleFollow(alice.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "removed", result.Action)
		assert.Equal(t, int64(0), result.Count)

		// 取关不产生新通知
		var count int64
		env.db.Model(&model.Notification{}).Where("recipient_id = ?", bob.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := svc.ToggleFollow(alice.ID, 9999)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

// 自己关注自己允许写入关系，但永远不产生通知
func TestToggleFollowSelf(t *testing.T) {
	svc, env := newRelationService(t)
	alice := createTestUser(t, env.db, "alice")

	result, err := svc.ToggleFollow(alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "added", result.Action)

	var count int64
	env.db.Model(&model.Notification{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// 通知写入失败时关注整体回滚
func TestToggleFollowNotificationWriteFails(t *testing.T) {
	svc, env := newRelationService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	require.NoError(t, env.db.Migrator().DropTable(&model.Notification{}))

	_, err := svc.ToggleFollow(alice.ID, bob.ID)
	require.Error(t, err)

	var relations int64
	env.db.Model(&model.Relation{}).Count(&relations)
	assert.Equal(t, int64(0), relations)
}

func TestFollowLists(t *testing.T) {
	svc, env := newRelationService(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")
	carol := createTestUser(t, env.db, "carol")

	_, err := svc.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.ToggleFollow(alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = svc.ToggleFollow(bob.ID, carol.ID)
	require.NoError(t, err)

	following, err := svc.GetFollowing(alice.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), following.Total)
	assert.Len(t, following.Users, 2)

	followers, err := svc.GetFollowers(carol.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers.Total)

	names := []string{followers.Users[0].Username, followers.Users[1].Username}
	assert.ElementsMatch(t, []string{"alice", "bob"}, names)
}
