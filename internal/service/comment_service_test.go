package service

import (
	"testing"
	"time"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/badwords"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService(t *testing.T) (*CommentService, *testEnv) {
	t.Helper()
	db := setupTestDB(t)
	commentRepo := repository.NewCommentRepository(db)
	commentLikeRepo := repository.NewCommentLikeRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	notificationService := NewNotificationService(repository.NewNotificationRepository(db), nil)
	svc := NewCommentService(commentRepo, commentLikeRepo, videoRepo,
		notificationService, badwords.New(), testCoinCfg.CommentReward)
	return svc, &testEnv{db: db}
}

func TestCommentCreate(t *testing.T) {
	svc, env := newCommentService(t)
	author := createTestUser(t, env.db, "author")
	viewer := createTestUser(t, env.db, "viewer")
	video := createTestVideo(t, env.db, author.ID, "clip")

	info, err := svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Content: "harika video"})
	require.NoError(t, err)
	assert.Equal(t, "harika video", info.Content)
	assert.False(t, info.IsVideoOwner)
	assert.Nil(t, info.ParentID)

	// 视频作者收到评论通知
	var notification model.Notification
	require.NoError(t, env.db.Where("recipient_id = ?", author.ID).First(&notification).Error)
	assert.Equal(t, model.NotificationTypeComment, notification.Type)

	// 评论者拿到奖励金币
	var user model.User
	require.NoError(t, env.db.First(&user, viewer.ID).Error)
	assert.Equal(t, int64(52), user.Coins)
}

func TestCommentCreateProfanity(t *testing.T) {
	svc, env := newCommentService(t)
	author := createTestUser(t, env.db, "author")
	video := createTestVideo(t, env.db, author.ID, "clip")

	_, err := svc.Create(author.ID, video.ID, &dto.CommentCreateRequest{Content: "ne salak video"})
	assert.ErrorIs(t, err, ErrInvalidContent)

	var count int64
	env.db.Model(&model.Comment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCommentReplyRules(t *testing.T) {
	svc, env := newCommentService(t)
	author := createTestUser(t, env.db, "author")
	viewer := createTestUser(t, env.db, "viewer")
	video := createTestVideo(t, env.db, author.ID, "clip")
	other := createTestVideo(t, env.db, author.ID, "other clip")

	root, err := svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Content: "kök yorum"})
	require.NoError(t, err)

	t.Run("reply notifies parent author", func(t *testing.T) {
		reply, err := svc.Create(author.ID, video.ID, &dto.CommentCreateRequest{
			Content:  "teşekkürler",
			ParentID: &root.ID,
		})
		require.NoError(t, err)
		assert.True(t, reply.IsVideoOwner)

		var notification model.Notification
		require.NoError(t, env.db.Where("recipient_id = ? AND sender_id = ?", viewer.ID, author.ID).
			First(&notification).Error)
		assert.Equal(t, model.NotificationTypeComment, notification.Type)
	})

	t.Run("reply to reply rejected", func(t *testing.T) {
		var reply model.Comment
		require.NoError(t, env.db.Where("parent_id IS NOT NULL").First(&reply).Error)

		_, err := svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{
			Content:  "ikinci seviye",
			ParentID: &reply.ID,
		})
		assert.ErrorIs(t, err, ErrReplyDepthExceeded)
	})

	t.Run("parent from another video rejected", func(t *testing.T) {
		_, err := svc.Create(viewer.ID, other.ID, &dto.CommentCreateRequest{
			Content:  "yanlış video",
			ParentID: &root.ID,
		})
		assert.ErrorIs(t, err, ErrParentVideoMismatch)
	})

	t.Run("unknown parent rejected", func(t *testing.T) {
		badParent := int64(9999)
		_, err := svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{
			Content:  "kayıp",
			ParentID: &badParent,
		})
		assert.ErrorIs(t, err, ErrParentNotFound)
	})
}

func TestCommentTreeOrdering(t *testing.T) {
	svc, env := newCommentService(t)
	author := createTestUser(t, env.db, "author")
	video := createTestVideo(t, env.db, author.ID, "clip")

	first, err := svc.Create(author.ID, video.ID, &dto.CommentCreateRequest{Content: "ilk"})
	require.NoError(t, err)
	second, err := svc.Create(author.ID, video.ID, &dto.CommentCreateRequest{Content: "ikinci"})
	require.NoError(t, err)

	_, err = svc.Create(author.ID, video.ID, &dto.CommentCreateRequest{Content: "cevap a", ParentID: &first.ID})
	require.NoError(t, err)
	_, err = svc.Create(author.ID, video.ID, &dto.CommentCreateRequest{Content: "cevap b", ParentID: &first.ID})
	require.NoError(t, err)

	tree, err := svc.ListByVideo(video.ID, author.ID)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	// 根评论最新在前，回复按时间正序
	assert.Equal(t, second.ID, tree[0].ID)
	assert.Equal(t, first.ID, tree[1].ID)
	require.Len(t, tree[1].Replies, 2)
	assert.Equal(t, "cevap a", tree[1].Replies[0].Content)
	assert.Equal(t, "cevap b", tree[1].Replies[1].Content)
	assert.Empty(t, tree[0].Replies)
}

// 根评论和回复时间戳相同时，回复仍然挂到根评论下，不会被建树丢弃
func TestCommentTreeEqualTimestamps(t *testing.T) {
	svc, env := newCommentService(t)
	author := createTestUser(t, env.db, "author")
	video := createTestVideo(t, env.db, author.ID, "clip")

	at := time.Now().Truncate(time.Second)
	root := &model.Comment{UserID: author.ID, VideoID: video.ID, Content: "kök", CreatedAt: at}
	require.NoError(t, env.db.Create(root).Error)
	reply := &model.Comment{UserID: author.ID, VideoID: video.ID, Content: "cevap", ParentID: &root.ID, CreatedAt: at}
	require.NoError(t, env.db.Create(reply).Error)

	tree, err := svc.ListByVideo(video.ID, 0)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, root.ID, tree[0].ID)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, "cevap", tree[0].Replies[0].Content)
}

// 通知写入失败时评论和奖励整体回滚
func TestCommentCreateNotificationWriteFails(t *testing.T) {
	svc, env := newCommentService(t)
	author := createTestUser(t, env.db, "author")
	viewer := createTestUser(t, env.db, "viewer")
	video := createTestVideo(t, env.db, author.ID, "clip")

	require.NoError(t, env.db.Migrator().DropTable(&model.Notification{}))

	_, err := svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Content: "harika video"})
	require.Error(t, err)

	var comments int64
	env.db.Model(&model.Comment{}).Count(&comments)
	assert.Equal(t, int64(0), comments)

	var user model.User
	require.NoError(t, env.db.First(&user, viewer.ID).Error)
	assert.Equal(t, testCoinCfg.InitialBalance, user.Coins)
}

func TestCommentToggleLike(t *testing.T) {
	svc, env := newCommentService(t)
	author := createTestUser(t, env.db, "author")
	viewer := createTestUser(t, env.db, "viewer")
	video := createTestVideo(t, env.db, author.ID, "clip")

	comment, err := svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Content: "yorum"})
	require.NoError(t, err)

	t.Run("viewer like does not mark creator", func(t *testing.T) {
		result, err := svc.ToggleLike(viewer.ID, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, "added", result.Action)
		assert.Equal(t, int64(1), result.LikeCount)
		assert.False(t, result.CreatorLiked)
	})

	t.Run("owner like sets creator flag", func(t *testing.T) {
		result, err := svc.ToggleLike(author.ID, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, "added", result.Action)
		assert.Equal(t, int64(2), result.LikeCount)
		assert.True(t, result.CreatorLiked)
	})

	t.Run("owner unlike flips flag back", func(t *testing.T) {
		result, err := svc.ToggleLike(author.ID, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, "removed", result.Action)
		assert.Equal(t, int64(1), result.LikeCount)
		assert.False(t, result.CreatorLiked)
	})

	t.Run("unknown comment", func(t *testing.T) {
		_, err := svc.ToggleLike(viewer.ID, 9999)
		assert.ErrorIs(t, err, ErrCommentNotFound)
	})
}

func TestCommentDelete(t *testing.T) {
	svc, env := newCommentService(t)
	author := createTestUser(t, env.db, "author")
	viewer := createTestUser(t, env.db, "viewer")
	stranger := createTestUser(t, env.db, "stranger")
	video := createTestVideo(t, env.db, author.ID, "clip")

	root, err := svc.Create(viewer.ID, video.ID, &dto.CommentCreateRequest{Content: "kök"})
	require.NoError(t, err)
	reply, err := svc.Create(author.ID, video.ID, &dto.CommentCreateRequest{Content: "cevap", ParentID: &root.ID})
	require.NoError(t, err)
	_, err = svc.ToggleLike(viewer.ID, reply.ID)
	require.NoError(t, err)

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := svc.Delete(root.ID, stranger.ID)
		assert.ErrorIs(t, err, ErrCommentNoPermission)
	})

	t.Run("author deletes root with replies and likes", func(t *testing.T) {
		require.NoError(t, svc.Delete(root.ID, viewer.ID))

		var comments, likes int64
		env.db.Model(&model.Comment{}).Count(&comments)
		env.db.Model(&model.CommentLike{}).Count(&likes)
		assert.Equal(t, int64(0), comments)
		assert.Equal(t, int64(0), likes)
	})
}
