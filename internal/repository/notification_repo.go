package repository

import (
	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create 创建通知
func (r *NotificationRepository) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

// CountUnread 统计未读通知数
func (r *NotificationRepository) CountUnread(recipientID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// ListByRecipient 查询用户的通知，最新在前
func (r *NotificationRepository) ListByRecipient(recipientID int64) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Preload("Sender").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkRead 将指定通知置为已读，幂等
// 只处理传入的 ID，列表读取和置读之间新写入的通知保持未读
func (r *NotificationRepository) MarkRead(recipientID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&model.Notification{}).
		Where("recipient_id = ? AND id IN ? AND is_read = ?", recipientID, ids, false).
		UpdateColumn("is_read", true).Error
}
