package handler

import (
	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/response"
	"vetrico-go/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List 通知列表
// @Summary 通知列表
// @Description 按时间倒序返回全部通知，读取后全部置为已读
// @Tags 通知
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "获取成功"
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	notifications, err := h.notificationService.List(userID)
	if err != nil {
		response.InternalError(c, "获取失败")
		return
	}

	response.OK(c, "获取成功", notifications)
}

// UnreadCount 未读通知数
// @Summary 未读通知数
// @Tags 通知
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "获取成功"
// @Router /notifications/unread [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	count, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "获取失败")
		return
	}

	response.OK(c, "获取成功", gin.H{"unread": count})
}
