package repository

import (
	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create 创建消息
func (r *MessageRepository) Create(message *model.Message) error {
	return r.db.Create(message).Error
}

// ListBetween 查询两个用户之间的全部消息，按时间升序
func (r *MessageRepository) ListBetween(userA, userB int64) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userA, userB, userB, userA,
	).Order("created_at ASC, id ASC").Find(&messages).Error
	return messages, err
}

// ListInvolving 查询用户收发的全部消息，最新在前
// 会话折叠由上层完成
func (r *MessageRepository) ListInvolving(userID int64) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC, id DESC").Find(&messages).Error
	return messages, err
}

// MarkConversationRead 将某个发送者发给读者的未读消息全部置为已读，幂等
func (r *MessageRepository) MarkConversationRead(readerID, otherUserID int64) error {
	return r.db.Model(&model.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND is_read = ?", readerID, otherUserID, false).
		UpdateColumn("is_read", true).Error
}
