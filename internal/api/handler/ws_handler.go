package handler

import (
	"encoding/json"
	"net/http"

	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/response"
	"vetrico-go/internal/config"
	"vetrico-go/internal/realtime"
	"vetrico-go/internal/service"
	"vetrico-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type WsHandler struct {
	hub             *realtime.Hub
	chatService     *service.ChatService
	reactionService *service.ReactionService
	upgrader        websocket.Upgrader
	queueSize       int
}

func NewWsHandler(hub *realtime.Hub, chatService *service.ChatService, reactionService *service.ReactionService, cfg *config.WebsocketConfig) *WsHandler {
	return &WsHandler{
		hub:             hub,
		chatService:     chatService,
		reactionService: reactionService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		queueSize: cfg.SendQueueSize,
	}
}

// Serve Websocket 接入
// @Summary Websocket 接入
// @Description 升级为 Websocket 连接，上行事件 send_message/typing/stop_typing/send_reaction
// @Tags 实时
// @Security BearerAuth
// @Success 101 "协议切换"
// @Router /ws [get]
func (h *WsHandler) Serve(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Websocket 升级失败", zap.Error(err))
		return
	}

	client := realtime.NewClient(uuid.NewString(), userID, h.hub, conn, h.queueSize)
	h.hub.Register(client)

	go client.WritePump()
	client.ReadPump(h.dispatch)
}

// dispatch 按事件名分发上行消息，未知事件丢弃
func (h *WsHandler) dispatch(c *realtime.Client, event *realtime.InboundEvent) {
	switch event.Event {
	case realtime.EventSendMessage:
		var payload realtime.SendMessagePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return
		}
		if _, err := h.chatService.SendMessage(c.UserID, c.ID, payload.RecipientID, payload.Body); err != nil {
			logger.Warn("私信发送失败",
				zap.Int64("sender_id", c.UserID),
				zap.Int64("recipient_id", payload.RecipientID),
				zap.Error(err))
		}
	case realtime.EventTyping:
		var payload realtime.TypingPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return
		}
		h.chatService.SetTyping(c.UserID, payload.RecipientID)
	case realtime.EventStopTyping:
		var payload realtime.TypingPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return
		}
		h.chatService.ClearTyping(c.UserID, payload.RecipientID)
	case realtime.EventSendReaction:
		var payload realtime.SendReactionPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return
		}
		h.reactionService.Broadcast(c.UserID, payload.VideoID, payload.Emoji)
	default:
		logger.Debug("未知的上行事件", zap.String("event", event.Event))
	}
}
