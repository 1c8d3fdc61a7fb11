package service

// Pusher 实时事件推送接口，由 realtime.Hub 实现
type Pusher interface {
	PushToUser(userID int64, event string, payload interface{})
	PushToConn(connID string, event string, payload interface{})
	Broadcast(event string, payload interface{})
}

// OnlineChecker 在线状态查询接口，由 realtime.PresenceRegistry 实现
type OnlineChecker interface {
	IsOnline(userID int64) bool
}
