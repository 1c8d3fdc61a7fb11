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
	ErrUserNotFound        = errors.New("用户不存在")
	ErrVerificationPending = errors.New("认证申请已在审核中")
)

type UserService struct {
	userRepo     *repository.UserRepository
	videoRepo    *repository.VideoRepository
	relationRepo *repository.RelationRepository
	likeRepo     *repository.LikeRepository
	commentRepo  *repository.CommentRepository
	filter       *badwords.Filter
	online       OnlineChecker
}

func NewUserService(
	userRepo *repository.UserRepository,
	videoRepo *repository.VideoRepository,
	relationRepo *repository.RelationRepository,
	likeRepo *repository.LikeRepository,
	commentRepo *repository.CommentRepository,
	filter *badwords.Filter,
	online OnlineChecker,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		videoRepo:    videoRepo,
		relationRepo: relationRepo,
		likeRepo:     likeRepo,
		commentRepo:  commentRepo,
		filter:       filter,
		online:       online,
	}
}

// GetMe 获取当前登录用户信息
func (s *UserService) GetMe(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	info := toUserInfo(user)
	return &info, nil
}

// GetProfile 获取用户主页数据，包含其视频、关注统计和在线状态
func (s *UserService) GetProfile(username string, viewerID int64) (*dto.ProfileData, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	videos, err := s.videoRepo.ListByAuthor(user.ID)
	if err != nil {
		return nil, err
	}

	videoInfos := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		info, err := s.buildVideoInfo(&videos[i])
		if err != nil {
			return nil, err
		}
		videoInfos = append(videoInfos, *info)
	}

	followCount, err := s.relationRepo.CountFollowing(user.ID)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.relationRepo.CountFollowers(user.ID)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID > 0 && viewerID != user.ID {
		isFollowing, err = s.relationRepo.Exists(viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ProfileData{
		User:          toUserInfo(user),
		Videos:        videoInfos,
		FollowCount:   followCount,
		FollowerCount: followerCount,
		IsFollowing:   isFollowing,
		IsOnline:      s.online.IsOnline(user.ID),
	}, nil
}

// UpdateProfile 更新个人资料，简介同样过屏蔽词
func (s *UserService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	updates := make(map[string]interface{})
	if req.Bio != nil {
		if s.filter.Contains(*req.Bio) {
			return nil, ErrInvalidContent
		}
		updates["bio"] = *req.Bio
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if len(updates) > 0 {
		if err := s.userRepo.UpdateProfile(userID, updates); err != nil {
			return nil, err
		}
	}

	return s.GetMe(userID)
}

// ApplyVerification 提交认证申请，置为待审核
func (s *UserService) ApplyVerification(userID int64) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.VerificationStatus == model.VerificationPending {
		return ErrVerificationPending
	}
	if user.IsVerified {
		return nil
	}
	return s.userRepo.SetVerificationStatus(userID, model.VerificationPending, false)
}

func (s *UserService) buildVideoInfo(video *model.Video) (*dto.VideoInfo, error) {
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
