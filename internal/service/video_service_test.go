package service

import (
	"testing"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/badwords"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVideoService(t *testing.T) (*VideoService, *testEnv) {
	t.Helper()
	db := setupTestDB(t)
	videoRepo := repository.NewVideoRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	coinRepo := repository.NewCoinRepository(db)
	notificationService := NewNotificationService(repository.NewNotificationRepository(db), nil)
	coinService := NewCoinService(coinRepo, videoRepo, notificationService, &testCoinCfg)
	svc := NewVideoService(videoRepo, likeRepo, commentRepo, coinService, badwords.New())
	return svc, &testEnv{db: db}
}

func TestVideoPublishAndGet(t *testing.T) {
	svc, env := newVideoService(t)
	author := createTestUser(t, env.db, "author")

	info, err := svc.Publish(author.ID, &dto.VideoCreateRequest{
		Caption: "ilk video",
		PlayURL: "/videos/1.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, "ilk video", info.Caption)
	assert.Equal(t, "author", info.AuthorName)
	assert.Equal(t, int64(0), info.LikeCount)

	_, err = svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoPublishProfanity(t *testing.T) {
	svc, env := newVideoService(t)
	author := createTestUser(t, env.db, "author")

	_, err := svc.Publish(author.ID, &dto.VideoCreateRequest{
		Caption: "salak bir video",
		PlayURL: "/videos/1.mp4",
	})
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestVideoFeedGrantsDailyBonus(t *testing.T) {
	svc, env := newVideoService(t)
	author := createTestUser(t, env.db, "author")
	createTestVideo(t, env.db, author.ID, "clip")

	data, err := svc.Feed(author.ID, 20)
	require.NoError(t, err)
	assert.True(t, data.BonusGranted)
	assert.Equal(t, int64(10), data.BonusAmount)
	assert.Len(t, data.Videos, 1)

	// 当日再次拉取不再发放
	data, err = svc.Feed(author.ID, 20)
	require.NoError(t, err)
	assert.False(t, data.BonusGranted)

	var user model.User
	require.NoError(t, env.db.First(&user, author.ID).Error)
	assert.Equal(t, int64(60), user.Coins)
}

func TestVideoIncrementView(t *testing.T) {
	svc, env := newVideoService(t)
	author := createTestUser(t, env.db, "author")
	video := createTestVideo(t, env.db, author.ID, "clip")

	views, err := svc.IncrementView(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)

	views, err = svc.IncrementView(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views)

	_, err = svc.IncrementView(9999)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoUpdateCaption(t *testing.T) {
	svc, env := newVideoService(t)
	author := createTestUser(t, env.db, "author")
	stranger := createTestUser(t, env.db, "stranger")
	video := createTestVideo(t, env.db, author.ID, "eski")

	_, err := svc.UpdateCaption(video.ID, stranger.ID, "yeni")
	assert.ErrorIs(t, err, ErrVideoNoPermission)

	_, err = svc.UpdateCaption(video.ID, author.ID, "aptal açıklama")
	assert.ErrorIs(t, err, ErrInvalidContent)

	info, err := svc.UpdateCaption(video.ID, author.ID, "yeni açıklama")
	require.NoError(t, err)
	assert.Equal(t, "yeni açıklama", info.Caption)
}

// 删除视频时点赞、收藏、评论树、评论点赞、举报一并清掉
func TestVideoDeleteCascade(t *testing.T) {
	svc, env := newVideoService(t)
	author := createTestUser(t, env.db, "author")
	viewer := createTestUser(t, env.db, "viewer")
	video := createTestVideo(t, env.db, author.ID, "clip")
	keep := createTestVideo(t, env.db, author.ID, "keep")

	root := &model.Comment{UserID: viewer.ID, VideoID: video.ID, Content: "kök"}
	require.NoError(t, env.db.Create(root).Error)
	require.NoError(t, env.db.Create(&model.Comment{
		UserID: author.ID, VideoID: video.ID, Content: "cevap", ParentID: &root.ID,
	}).Error)
	require.NoError(t, env.db.Create(&model.CommentLike{UserID: author.ID, CommentID: root.ID}).Error)
	require.NoError(t, env.db.Create(&model.Like{UserID: viewer.ID, VideoID: video.ID}).Error)
	require.NoError(t, env.db.Create(&model.Bookmark{UserID: viewer.ID, VideoID: video.ID}).Error)
	require.NoError(t, env.db.Create(&model.Report{ReporterID: viewer.ID, VideoID: video.ID, Reason: "spam"}).Error)
	require.NoError(t, env.db.Create(&model.Like{UserID: viewer.ID, VideoID: keep.ID}).Error)

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := svc.Delete(video.ID, viewer.ID, false)
		assert.ErrorIs(t, err, ErrVideoNoPermission)
	})

	t.Run("admin can delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(video.ID, viewer.ID, true))

		var count int64
		env.db.Model(&model.Video{}).Where("id = ?", video.ID).Count(&count)
		assert.Equal(t, int64(0), count, "videos")
		env.db.Model(&model.Comment{}).Where("video_id = ?", video.ID).Count(&count)
		assert.Equal(t, int64(0), count, "comments")
		env.db.Model(&model.CommentLike{}).Count(&count)
		assert.Equal(t, int64(0), count, "comment likes")
		env.db.Model(&model.Like{}).Where("video_id = ?", video.ID).Count(&count)
		assert.Equal(t, int64(0), count, "likes")
		env.db.Model(&model.Bookmark{}).Where("video_id = ?", video.ID).Count(&count)
		assert.Equal(t, int64(0), count, "bookmarks")
		env.db.Model(&model.Report{}).Where("video_id = ?", video.ID).Count(&count)
		assert.Equal(t, int64(0), count, "reports")

		// 其他视频的数据不受影响
		var keepLikes int64
		env.db.Model(&model.Like{}).Where("video_id = ?", keep.ID).Count(&keepLikes)
		assert.Equal(t, int64(1), keepLikes)
	})
}
