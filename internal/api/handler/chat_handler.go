package handler

import (
	"errors"

	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/response"
	"vetrico-go/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ListConversations 会话列表
// @Summary 会话列表
// @Description 按最后一条消息时间倒序，附带对端在线状态
// @Tags 私信
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "获取成功"
// @Router /messages [get]
func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	conversations, err := h.chatService.ListConversations(userID)
	if err != nil {
		response.InternalError(c, "获取失败")
		return
	}

	response.OK(c, "获取成功", conversations)
}

// GetConversation 会话详情
// @Summary 与指定用户的会话详情
// @Description 打开会话即把对方发来的未读消息全部置为已读
// @Tags 私信
// @Produce json
// @Security BearerAuth
// @Param id path int true "对方用户ID"
// @Success 200 {object} response.Response "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /messages/{id} [get]
func (h *ChatHandler) GetConversation(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	otherID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	data, err := h.chatService.GetConversation(userID, otherID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "获取失败")
		return
	}

	response.OK(c, "获取成功", data)
}

// MarkRead 标记会话已读
// @Summary 标记会话已读
// @Description 把指定用户发来的未读消息全部置为已读，幂等
// @Tags 私信
// @Produce json
// @Security BearerAuth
// @Param id path int true "对方用户ID"
// @Success 200 {object} response.Response "标记成功"
// @Router /messages/{id}/read [post]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	otherID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.chatService.MarkConversationRead(userID, otherID); err != nil {
		response.InternalError(c, "标记失败")
		return
	}

	response.OK(c, "标记成功", nil)
}
