package realtime

import "encoding/json"

// 下行事件名
const (
	EventUserStatus     = "user_status"
	EventReceiveMessage = "receive_message"
	EventMessageSent    = "message_sent"
	EventDisplayTyping  = "display_typing"
	EventHideTyping     = "hide_typing"
	EventAnimateReact   = "animate_reaction"
)

// 上行事件名
const (
	EventSendMessage  = "send_message"
	EventTyping       = "typing"
	EventStopTyping   = "stop_typing"
	EventSendReaction = "send_reaction"
)

// Envelope 下行事件信封
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// InboundEvent 上行事件信封，data 延迟解析
type InboundEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// UserStatusPayload 上下线广播载荷
type UserStatusPayload struct {
	UserID int64  `json:"user_id"`
	Status string `json:"status"` // online / offline
}

// SendMessagePayload send_message 上行载荷
type SendMessagePayload struct {
	RecipientID int64  `json:"recipient_id"`
	Body        string `json:"body"`
}

// TypingPayload typing / stop_typing 上行载荷
type TypingPayload struct {
	RecipientID int64 `json:"recipient_id"`
}

// SendReactionPayload send_reaction 上行载荷
type SendReactionPayload struct {
	VideoID int64  `json:"video_id"`
	Emoji   string `json:"emoji"`
}

// ReceiveMessagePayload receive_message 下行载荷
type ReceiveMessagePayload struct {
	SenderID  int64  `json:"sender_id"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// MessageSentPayload message_sent 下行载荷（仅回发给发送方的当前连接）
type MessageSentPayload struct {
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// TypingSignal display_typing / hide_typing 下行载荷
type TypingSignal struct {
	SenderID int64 `json:"sender_id"`
}

// ReactionPayload animate_reaction 下行载荷
type ReactionPayload struct {
	VideoID int64  `json:"video_id"`
	Emoji   string `json:"emoji"`
}
