package realtime

import (
	"time"

	"vetrico-go/pkg/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
)

// Client 一条 websocket 连接
type Client struct {
	ID     string
	UserID int64

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient 创建连接对象，send 队列满时事件直接丢弃（尽力投递）
func NewClient(id string, userID int64, hub *Hub, conn *websocket.Conn, queueSize int) *Client {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Client{
		ID:     id,
		UserID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, queueSize),
	}
}

// WritePump 从 send 队列向连接写出事件，并维持心跳
// 每条连接独占一个写协程，保证单连接内事件按入队顺序到达
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump 读取上行事件并交给 dispatch 处理
// 连接断开时负责从 Hub 注销，这是断线的唯一清理入口
func (c *Client) ReadPump(dispatch func(c *Client, event *InboundEvent)) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var event InboundEvent
		if err := c.conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Websocket closed unexpectedly",
					zap.Int64("user_id", c.UserID),
					zap.Error(err),
				)
			}
			return
		}
		dispatch(c, &event)
	}
}

// enqueue 非阻塞入队，队列满时丢弃
func (c *Client) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
		logger.Warn("Client send queue full, event dropped",
			zap.Int64("user_id", c.UserID),
			zap.String("conn_id", c.ID),
		)
	}
}
