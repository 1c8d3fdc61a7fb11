package handler

import (
	"errors"

	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/response"
	"vetrico-go/internal/service"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkService *service.BookmarkService
}

func NewBookmarkHandler(bookmarkService *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// Toggle 收藏/取消收藏
// @Summary 收藏或取消收藏视频
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "操作成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/bookmark [post]
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	result, err := h.bookmarkService.Toggle(userID, videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "操作失败")
		return
	}

	response.OK(c, "操作成功", result)
}

// List 收藏列表
// @Summary 当前用户的收藏视频列表
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "获取成功"
// @Router /users/me/bookmarks [get]
func (h *BookmarkHandler) List(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	videos, err := h.bookmarkService.ListBookmarked(userID)
	if err != nil {
		response.InternalError(c, "获取失败")
		return
	}

	response.OK(c, "获取成功", videos)
}
