package dto

import "time"

// MessageInfo 私信信息
type MessageInfo struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConversationInfo 会话列表条目
type ConversationInfo struct {
	OtherUser   RelationUserInfo `json:"other_user"`
	LastMessage MessageInfo      `json:"last_message"`
	IsOnline    bool             `json:"is_online"`
}

// ConversationData 会话详情数据
type ConversationData struct {
	OtherUser RelationUserInfo `json:"other_user"`
	Messages  []MessageInfo    `json:"messages"`
	IsOnline  bool             `json:"is_online"`
}
