package service

import (
	"testing"

	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModerationService(t *testing.T) (*ModerationService, *testEnv) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewModerationService(
		repository.NewReportRepository(db),
		repository.NewUserRepository(db),
		repository.NewVideoRepository(db),
		repository.NewLikeRepository(db),
		NewNotificationService(repository.NewNotificationRepository(db), nil),
	)
	return svc, &testEnv{db: db}
}

func TestReportVideo(t *testing.T) {
	svc, env := newModerationService(t)
	author := createTestUser(t, env.db, "author")
	reporter := createTestUser(t, env.db, "reporter")
	video := createTestVideo(t, env.db, author.ID, "clip")

	result, err := svc.ReportVideo(reporter.ID, video.ID, "spam")
	require.NoError(t, err)
	assert.False(t, result.Duplicate)

	// 同一用户重复举报同一视频只记一次
	result, err = svc.ReportVideo(reporter.ID, video.ID, "spam again")
	require.NoError(t, err)
	assert.True(t, result.Duplicate)

	var count int64
	env.db.Model(&model.Report{}).Count(&count)
	assert.Equal(t, int64(1), count)

	_, err = svc.ReportVideo(reporter.ID, 9999, "spam")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVerificationFlow(t *testing.T) {
	svc, env := newModerationService(t)
	admin := createTestUser(t, env.db, "admin")
	user := createTestUser(t, env.db, "user")

	require.NoError(t, svc.ApproveVerification(admin.ID, user.ID))

	var updated model.User
	require.NoError(t, env.db.First(&updated, user.ID).Error)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, model.VerificationApproved, updated.VerificationStatus)

	// 审核通过下发系统通知
	var notification model.Notification
	require.NoError(t, env.db.Where("recipient_id = ?", user.ID).First(&notification).Error)
	assert.Equal(t, model.NotificationTypeSystemApprove, notification.Type)
	assert.Equal(t, admin.ID, notification.SenderID)

	require.NoError(t, svc.RejectVerification(admin.ID, user.ID))
	require.NoError(t, env.db.First(&updated, user.ID).Error)
	assert.False(t, updated.IsVerified)
	assert.Equal(t, model.VerificationRejected, updated.VerificationStatus)
}

func TestDismissReport(t *testing.T) {
	svc, env := newModerationService(t)
	author := createTestUser(t, env.db, "author")
	reporter := createTestUser(t, env.db, "reporter")
	video := createTestVideo(t, env.db, author.ID, "clip")

	_, err := svc.ReportVideo(reporter.ID, video.ID, "spam")
	require.NoError(t, err)

	var report model.Report
	require.NoError(t, env.db.First(&report).Error)

	require.NoError(t, svc.DismissReport(report.ID))
	assert.ErrorIs(t, svc.DismissReport(report.ID), ErrReportNotFound)
}

func TestAdminPanel(t *testing.T) {
	svc, env := newModerationService(t)
	author := createTestUser(t, env.db, "author")
	reporter := createTestUser(t, env.db, "reporter")
	video := createTestVideo(t, env.db, author.ID, "clip")

	_, err := svc.ReportVideo(reporter.ID, video.ID, "spam")
	require.NoError(t, err)
	require.NoError(t, env.db.Model(&model.User{}).Where("id = ?", author.ID).
		Update("verification_status", model.VerificationPending).Error)

	data, err := svc.AdminPanel()
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Stats.Users)
	assert.Equal(t, int64(1), data.Stats.Videos)
	assert.Equal(t, int64(1), data.Stats.Reports)
	require.Len(t, data.PendingVerifications, 1)
	assert.Equal(t, "author", data.PendingVerifications[0].Username)
	require.Len(t, data.Reports, 1)
	assert.Equal(t, "reporter", data.Reports[0].ReporterName)
}

func TestDeleteUserCascade(t *testing.T) {
	svc, env := newModerationService(t)
	user := createTestUser(t, env.db, "user")
	other := createTestUser(t, env.db, "other")
	video := createTestVideo(t, env.db, user.ID, "clip")

	require.NoError(t, env.db.Create(&model.Like{UserID: other.ID, VideoID: video.ID}).Error)
	require.NoError(t, env.db.Create(&model.Relation{FollowerID: other.ID, FollowID: user.ID}).Error)
	require.NoError(t, env.db.Create(&model.Message{SenderID: user.ID, RecipientID: other.ID, Body: "selam"}).Error)

	require.NoError(t, svc.DeleteUser(user.ID))

	var users, videos, likes, relations, messages int64
	env.db.Model(&model.User{}).Where("id = ?", user.ID).Count(&users)
	env.db.Model(&model.Video{}).Count(&videos)
	env.db.Model(&model.Like{}).Count(&likes)
	env.db.Model(&model.Relation{}).Count(&relations)
	env.db.Model(&model.Message{}).Count(&messages)
	assert.Zero(t, users)
	assert.Zero(t, videos)
	assert.Zero(t, likes)
	assert.Zero(t, relations)
	assert.Zero(t, messages)

	assert.ErrorIs(t, svc.DeleteUser(user.ID), ErrUserNotFound)
}
