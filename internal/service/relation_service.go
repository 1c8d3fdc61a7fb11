package service

import (
	"errors"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"

	"gorm.io/gorm"
)

type RelationService struct {
	relationRepo        *repository.RelationRepository
	userRepo            *repository.UserRepository
	notificationService *NotificationService
}

func NewRelationService(
	relationRepo *repository.RelationRepository,
	userRepo *repository.UserRepository,
	notificationService *NotificationService,
) *RelationService {
	return &RelationService{
		relationRepo:        relationRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// ToggleFollow 关注/取关切换，返回动作和目标用户最新粉丝数
// 新增关注时的通知跟关注关系同一事务落库
func (s *RelationService) ToggleFollow(userID, targetID int64) (*dto.ToggleResult, error) {
	if _, err := s.userRepo.GetByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	added, err := s.relationRepo.ToggleWithNotify(userID, targetID)
	if err != nil {
		return nil, err
	}

	if added && userID != targetID {
		s.notificationService.InvalidateUnread(targetID)
	}

	count, err := s.relationRepo.CountFollowers(targetID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleResult{Action: toggleAction(added), Count: count}, nil
}

// IsFollowing 查询关注状态
func (s *RelationService) IsFollowing(userID, targetID int64) (bool, error) {
	return s.relationRepo.Exists(userID, targetID)
}

// GetFollowing 关注列表
func (s *RelationService) GetFollowing(userID int64, page, pageSize int) (*dto.RelationListData, error) {
	total, err := s.relationRepo.CountFollowing(userID)
	if err != nil {
		return nil, err
	}
	ids, err := s.relationRepo.GetFollowingIDs(userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return s.buildRelationList(ids, total, page, pageSize)
}

// GetFollowers 粉丝列表
func (s *RelationService) GetFollowers(userID int64, page, pageSize int) (*dto.RelationListData, error) {
	total, err := s.relationRepo.CountFollowers(userID)
	if err != nil {
		return nil, err
	}
	ids, err := s.relationRepo.GetFollowerIDs(userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return s.buildRelationList(ids, total, page, pageSize)
}

func (s *RelationService) buildRelationList(ids []int64, total int64, page, pageSize int) (*dto.RelationListData, error) {
	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	// 按关注顺序输出
	infos := make([]dto.RelationUserInfo, 0, len(ids))
	for _, id := range ids {
		user, ok := byID[id]
		if !ok {
			continue
		}
		infos = append(infos, toRelationUserInfo(user))
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return &dto.RelationListData{
		Users:      infos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func toRelationUserInfo(user *model.User) dto.RelationUserInfo {
	return dto.RelationUserInfo{
		ID:         user.ID,
		Username:   user.UserName,
		Avatar:     user.Avatar,
		IsVerified: user.IsVerified,
	}
}

func toggleAction(added bool) string {
	if added {
		return "added"
	}
	return "removed"
}
