package realtime

import (
	"encoding/json"
	"sync"

	"vetrico-go/pkg/logger"

	"go.uber.org/zap"
)

// Hub 连接集线器：维护全部活跃连接并提供事件推送
// 依赖 PresenceRegistry 判定用户的上下线迁移
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	byUser   map[int64]map[string]*Client
	presence *PresenceRegistry
}

// NewHub 创建集线器
func NewHub(presence *PresenceRegistry) *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		byUser:   make(map[int64]map[string]*Client),
		presence: presence,
	}
}

// Register 登记连接；用户首条连接上线时向全部客户端广播 user_status
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c.ID] = c
	set, ok := h.byUser[c.UserID]
	if !ok {
		set = make(map[string]*Client)
		h.byUser[c.UserID] = set
	}
	set[c.ID] = c
	h.mu.Unlock()

	if h.presence.Register(c.UserID, c.ID) {
		h.Broadcast(EventUserStatus, UserStatusPayload{UserID: c.UserID, Status: "online"})
	}

	logger.Debug("Websocket connected",
		zap.Int64("user_id", c.UserID),
		zap.String("conn_id", c.ID),
	)
}

// Unregister 注销连接；用户最后一条连接断开时广播离线
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c.ID]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c.ID)
	if set, ok := h.byUser[c.UserID]; ok {
		delete(set, c.ID)
		if len(set) == 0 {
			delete(h.byUser, c.UserID)
		}
	}
	close(c.send)
	h.mu.Unlock()

	if h.presence.Unregister(c.UserID, c.ID) {
		h.Broadcast(EventUserStatus, UserStatusPayload{UserID: c.UserID, Status: "offline"})
	}

	logger.Debug("Websocket disconnected",
		zap.Int64("user_id", c.UserID),
		zap.String("conn_id", c.ID),
	)
}

// PushToUser 向用户的全部连接推送事件，离线时静默丢弃
func (h *Hub) PushToUser(userID int64, event string, payload interface{}) {
	data, err := encode(event, payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.byUser[userID] {
		c.enqueue(data)
	}
}

// PushToConn 只向指定连接推送事件
func (h *Hub) PushToConn(connID string, event string, payload interface{}) {
	data, err := encode(event, payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if c, ok := h.clients[connID]; ok {
		c.enqueue(data)
	}
}

// Broadcast 向全部连接推送事件
func (h *Hub) Broadcast(event string, payload interface{}) {
	data, err := encode(event, payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		c.enqueue(data)
	}
}

func encode(event string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		logger.Error("Failed to encode event",
			zap.String("event", event),
			zap.Error(err),
		)
		return nil, err
	}
	return data, nil
}
