package dto

import "time"

// NotificationInfo 通知信息
type NotificationInfo struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Type       string    `json:"type"`
	PostID     *int64    `json:"post_id"`
	Amount     *int64    `json:"amount"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
