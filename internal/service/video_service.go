package service

import (
	"errors"
	"time"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/badwords"
	"vetrico-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound     = errors.New("视频不存在")
	ErrVideoNoPermission = errors.New("无权操作该视频")
	ErrInvalidContent    = errors.New("内容包含不当词汇")
)

type VideoService struct {
	videoRepo   *repository.VideoRepository
	likeRepo    *repository.LikeRepository
	commentRepo *repository.CommentRepository
	coinService *CoinService
	filter      *badwords.Filter
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	likeRepo *repository.LikeRepository,
	commentRepo *repository.CommentRepository,
	coinService *CoinService,
	filter *badwords.Filter,
) *VideoService {
	return &VideoService{
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		coinService: coinService,
		filter:      filter,
	}
}

// Publish 发布视频
func (s *VideoService) Publish(authorID int64, req *dto.VideoCreateRequest) (*dto.VideoInfo, error) {
	if s.filter.Contains(req.Caption) {
		return nil, ErrInvalidContent
	}

	video := &model.Video{
		AuthorID: authorID,
		Caption:  req.Caption,
		Category: req.Category,
		PlayURL:  req.PlayURL,
		CoverURL: req.CoverURL,
	}
	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	logger.Info("视频发布成功", zap.Int64("video_id", video.ID), zap.Int64("author_id", authorID))
	return s.GetByID(video.ID)
}

// GetByID 视频详情
func (s *VideoService) GetByID(videoID int64) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return s.buildVideoInfo(video)
}

// Feed 首页随机视频流
// 当日首次拉取时顺带发放签到奖励，奖励结果随流返回
func (s *VideoService) Feed(userID int64, limit int) (*dto.FeedData, error) {
	granted, amount, err := s.coinService.ApplyDailyBonusIfDue(userID, time.Now())
	if err != nil {
		return nil, err
	}

	videos, err := s.videoRepo.Feed(limit)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		info, err := s.buildVideoInfo(&videos[i])
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}

	data := &dto.FeedData{Videos: infos, BonusGranted: granted}
	if granted {
		data.BonusAmount = amount
	}
	return data, nil
}

// IncrementView 视频播放量自增，返回最新播放量
func (s *VideoService) IncrementView(videoID int64) (int64, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrVideoNotFound
		}
		return 0, err
	}

	if err := s.videoRepo.IncrementViewCount(videoID); err != nil {
		return 0, err
	}

	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		return 0, err
	}
	return video.ViewCount, nil
}

// UpdateCaption 更新视频描述，仅作者本人可操作
func (s *VideoService) UpdateCaption(videoID, userID int64, caption string) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if video.AuthorID != userID {
		return nil, ErrVideoNoPermission
	}
	if s.filter.Contains(caption) {
		return nil, ErrInvalidContent
	}

	if err := s.videoRepo.UpdateCaption(videoID, caption); err != nil {
		return nil, err
	}
	return s.GetByID(videoID)
}

// Delete 删除视频及其全部派生数据，作者或管理员可操作
func (s *VideoService) Delete(videoID, userID int64, isAdmin bool) error {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	if video.AuthorID != userID && !isAdmin {
		return ErrVideoNoPermission
	}

	if err := s.videoRepo.DeleteCascade(videoID); err != nil {
		return err
	}

	logger.Info("视频已删除", zap.Int64("video_id", videoID), zap.Int64("operator", userID))
	return nil
}

func (s *VideoService) buildVideoInfo(video *model.Video) (*dto.VideoInfo, error) {
	likeCount, err := s.likeRepo.CountByVideo(video.ID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.commentRepo.CountByVideo(video.ID)
	if err != nil {
		return nil, err
	}
	return &dto.VideoInfo{
		ID:           video.ID,
		AuthorID:     video.AuthorID,
		AuthorName:   video.Author.UserName,
		Caption:      video.Caption,
		Category:     video.Category,
		PlayURL:      video.PlayURL,
		CoverURL:     video.CoverURL,
		ViewCount:    video.ViewCount,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		CreatedAt:    video.CreatedAt,
	}, nil
}
