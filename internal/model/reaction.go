package model

import "time"

// Reaction 表情反应归档模型
// 实时链路不落库，由 worker 消费 Kafka 事件后异步写入
type Reaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:反应ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_reactions_user_id;comment:发送用户ID" json:"user_id"`
	VideoID   int64     `gorm:"not null;index:idx_reactions_video_id;comment:视频ID" json:"video_id"`
	Emoji     string    `gorm:"size:10;not null;comment:表情" json:"emoji"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:发送时间" json:"created_at"`
}

func (Reaction) TableName() string {
	return "reactions"
}
