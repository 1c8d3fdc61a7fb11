package service

import (
	"errors"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/badwords"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrCommentNoPermission = errors.New("无权删除该评论")
	ErrParentNotFound      = errors.New("回复的评论不存在")
	ErrParentVideoMismatch = errors.New("不能回复其他视频下的评论")
	ErrReplyDepthExceeded  = errors.New("只能回复一级评论")
)

type CommentService struct {
	commentRepo         *repository.CommentRepository
	commentLikeRepo     *repository.CommentLikeRepository
	videoRepo           *repository.VideoRepository
	notificationService *NotificationService
	filter              *badwords.Filter
	commentReward       int64
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	commentLikeRepo *repository.CommentLikeRepository,
	videoRepo *repository.VideoRepository,
	notificationService *NotificationService,
	filter *badwords.Filter,
	commentReward int64,
) *CommentService {
	return &CommentService{
		commentRepo:         commentRepo,
		commentLikeRepo:     commentLikeRepo,
		videoRepo:           videoRepo,
		notificationService: notificationService,
		filter:              filter,
		commentReward:       commentReward,
	}
}

// Create 发表评论或一级回复
// 回复必须指向同一视频下的根评论；评论者的奖励金币和
// 给被回复者（回复）或视频作者（根评论）的通知跟评论同一事务落库
func (s *CommentService) Create(userID, videoID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if s.filter.Contains(req.Content) {
		return nil, ErrInvalidContent
	}

	notifyUserID := video.AuthorID
	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.VideoID != videoID {
			return nil, ErrParentVideoMismatch
		}
		if parent.ParentID != nil {
			return nil, ErrReplyDepthExceeded
		}
		notifyUserID = parent.UserID
	}

	comment := &model.Comment{
		UserID:   userID,
		VideoID:  videoID,
		Content:  req.Content,
		ParentID: req.ParentID,
	}
	if err := s.commentRepo.CreateWithReward(comment, notifyUserID, s.commentReward); err != nil {
		return nil, err
	}

	if notifyUserID != userID {
		s.notificationService.InvalidateUnread(notifyUserID)
	}

	created, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}

	info := s.toCommentInfo(created, video.AuthorID, 0, false)
	return &info, nil
}

// ListByVideo 视频评论树
// 根评论按时间倒序，回复挂在根评论下按时间正序
func (s *CommentService) ListByVideo(videoID, viewerID int64) ([]dto.CommentInfo, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByVideo(videoID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(comments))
	for i := range comments {
		ids = append(ids, comments[i].ID)
	}

	likeCounts, err := s.commentLikeRepo.BatchCountByComments(ids)
	if err != nil {
		return nil, err
	}
	viewerLiked := make(map[int64]bool)
	if viewerID > 0 {
		viewerLiked, err = s.commentLikeRepo.BatchCheckLiked(viewerID, ids)
		if err != nil {
			return nil, err
		}
	}

	// 列表按时间倒序，倒着遍历即按时间正序建树
	roots := make([]dto.CommentInfo, 0, len(comments))
	rootIndex := make(map[int64]int)
	for i := len(comments) - 1; i >= 0; i-- {
		c := &comments[i]
		info := s.toCommentInfo(c, video.AuthorID, likeCounts[c.ID], viewerLiked[c.ID])
		if c.ParentID == nil {
			rootIndex[c.ID] = len(roots)
			roots = append(roots, info)
			continue
		}
		if idx, ok := rootIndex[*c.ParentID]; ok {
			roots[idx].Replies = append(roots[idx].Replies, info)
		}
	}

	// 根评论整体翻转回倒序
	for i, j := 0, len(roots)-1; i < j; i, j = i+1, j-1 {
		roots[i], roots[j] = roots[j], roots[i]
	}
	return roots, nil
}

// ToggleLike 评论点赞切换
// 视频作者的每次切换（无论点赞还是取消）都会翻转评论的作者赞过标记
func (s *CommentService) ToggleLike(userID, commentID int64) (*dto.CommentLikeResult, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	video, err := s.videoRepo.GetByID(comment.VideoID)
	if err != nil {
		return nil, err
	}

	added, err := s.commentLikeRepo.Toggle(userID, commentID)
	if err != nil {
		return nil, err
	}

	creatorLiked := comment.IsLikedByCreator
	if userID == video.AuthorID {
		creatorLiked, err = s.commentRepo.FlipLikedByCreator(commentID)
		if err != nil {
			return nil, err
		}
	}

	count, err := s.commentLikeRepo.CountByComment(commentID)
	if err != nil {
		return nil, err
	}

	return &dto.CommentLikeResult{
		Action:       toggleAction(added),
		LikeCount:    count,
		CreatorLiked: creatorLiked,
	}, nil
}

// Delete 删除评论及其回复，评论作者或视频作者可操作
func (s *CommentService) Delete(commentID, userID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != userID {
		video, err := s.videoRepo.GetByID(comment.VideoID)
		if err != nil {
			return err
		}
		if video.AuthorID != userID {
			return ErrCommentNoPermission
		}
	}

	return s.commentRepo.DeleteCascade(commentID)
}

func (s *CommentService) toCommentInfo(c *model.Comment, videoAuthorID, likeCount int64, userLiked bool) dto.CommentInfo {
	return dto.CommentInfo{
		ID:             c.ID,
		UserID:         c.UserID,
		VideoID:        c.VideoID,
		Username:       c.User.UserName,
		Avatar:         c.User.Avatar,
		Content:        c.Content,
		ParentID:       c.ParentID,
		IsVideoOwner:   c.UserID == videoAuthorID,
		LikedByCreator: c.IsLikedByCreator,
		LikeCount:      likeCount,
		UserLiked:      userLiked,
		CreatedAt:      c.CreatedAt,
		Replies:        []dto.CommentInfo{},
	}
}
