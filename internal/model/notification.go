package model

import "time"

// Notification 通知模型
// 发送者永远不等于接收者，写入前由 NotificationService 统一拦截
type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:通知ID" json:"id"`
	RecipientID int64     `gorm:"not null;index:idx_notifications_recipient_id;comment:接收用户ID" json:"recipient_id"`
	SenderID    int64     `gorm:"not null;comment:触发用户ID" json:"sender_id"`
	Type        string    `gorm:"size:20;not null;comment:通知类型" json:"type"`
	PostID      *int64    `gorm:"comment:关联视频ID" json:"post_id"`
	Amount      *int64    `gorm:"comment:金币数量(仅礼物通知)" json:"amount"`
	IsRead      bool      `gorm:"not null;default:false;comment:已读标记" json:"is_read"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_notifications_created_at;comment:通知时间" json:"created_at"`

	// 关联关系
	Sender User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

// 通知类型
const (
	NotificationTypeLike          = "like"
	NotificationTypeFollow        = "follow"
	NotificationTypeComment       = "comment"
	NotificationTypeGift          = "gift"
	NotificationTypeSystemApprove = "system_approve"
)
