package service

import (
	"context"
	"fmt"
	"time"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const unreadCacheTTL = time.Minute

type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	cache            *redis.Client // 允许为 nil，降级为直查数据库
}

func NewNotificationService(notificationRepo *repository.NotificationRepository, cache *redis.Client) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, cache: cache}
}

// Notify 写入一条通知
// 自己触发自己的事件统一在这里拦截，各业务服务不必重复判断
func (s *NotificationService) Notify(recipientID, senderID int64, notifType string, postID, amount *int64) error {
	if recipientID == senderID {
		return nil
	}

	notification := &model.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        notifType,
		PostID:      postID,
		Amount:      amount,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return err
	}

	s.InvalidateUnread(recipientID)
	return nil
}

// UnreadCount 未读通知数，优先走缓存
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	key := unreadCacheKey(userID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Int64(); err == nil {
			return cached, nil
		} else if err != redis.Nil {
			logger.Warn("读取未读通知缓存失败", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, count, unreadCacheTTL).Err(); err != nil {
			logger.Warn("写入未读通知缓存失败", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	return count, nil
}

// List 通知列表，按时间倒序，返回的通知置为已读
// 只置读本次返回的条目，读取期间新到的通知不会被顺带消费
func (s *NotificationService) List(userID int64) ([]dto.NotificationInfo, error) {
	notifications, err := s.notificationRepo.ListByRecipient(userID)
	if err != nil {
		return nil, err
	}

	unreadIDs := make([]int64, 0, len(notifications))
	for i := range notifications {
		if !notifications[i].IsRead {
			unreadIDs = append(unreadIDs, notifications[i].ID)
		}
	}
	if len(unreadIDs) > 0 {
		if err := s.notificationRepo.MarkRead(userID, unreadIDs); err != nil {
			return nil, err
		}
		s.InvalidateUnread(userID)
	}

	infos := make([]dto.NotificationInfo, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		infos = append(infos, dto.NotificationInfo{
			ID:         n.ID,
			SenderID:   n.SenderID,
			SenderName: n.Sender.UserName,
			Type:       n.Type,
			PostID:     n.PostID,
			Amount:     n.Amount,
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt,
		})
	}
	return infos, nil
}

// InvalidateUnread 使未读缓存失效，通知写入绕过本服务时（礼物转账事务）由调用方触发
func (s *NotificationService) InvalidateUnread(userID int64) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Del(ctx, unreadCacheKey(userID)).Err(); err != nil {
		logger.Warn("删除未读通知缓存失败", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func unreadCacheKey(userID int64) string {
	return fmt.Sprintf("notification:unread:%d", userID)
}
