package service

import (
	"errors"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo            *repository.LikeRepository
	videoRepo           *repository.VideoRepository
	notificationService *NotificationService
	likeReward          int64
}

func NewLikeService(
	likeRepo *repository.LikeRepository,
	videoRepo *repository.VideoRepository,
	notificationService *NotificationService,
	likeReward int64,
) *LikeService {
	return &LikeService{
		likeRepo:            likeRepo,
		videoRepo:           videoRepo,
		notificationService: notificationService,
		likeReward:          likeReward,
	}
}

// Toggle 点赞/取消点赞切换
// 新增且不是自赞时的通知和奖励跟切换同一事务落库，取消时不回收奖励
func (s *LikeService) Toggle(userID, videoID int64) (*dto.ToggleResult, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	added, err := s.likeRepo.ToggleWithReward(userID, videoID, video.AuthorID, s.likeReward)
	if err != nil {
		return nil, err
	}

	if added && userID != video.AuthorID {
		s.notificationService.InvalidateUnread(video.AuthorID)
	}

	count, err := s.likeRepo.CountByVideo(videoID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleResult{Action: toggleAction(added), Count: count}, nil
}

// IsLiked 查询点赞状态
func (s *LikeService) IsLiked(userID, videoID int64) (bool, error) {
	return s.likeRepo.Exists(userID, videoID)
}
