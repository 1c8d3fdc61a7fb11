package model

import "time"

// Message 私信模型
// 创建后内容不可变，只有 is_read 在接收方打开会话时翻转一次
type Message struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:消息ID" json:"id"`
	SenderID    int64     `gorm:"not null;index:idx_messages_sender_id;comment:发送用户ID" json:"sender_id"`
	RecipientID int64     `gorm:"not null;index:idx_messages_recipient_id;comment:接收用户ID" json:"recipient_id"`
	Body        string    `gorm:"size:1000;not null;comment:消息内容" json:"body"`
	IsRead      bool      `gorm:"not null;default:false;comment:已读标记" json:"is_read"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_messages_created_at;comment:发送时间" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
