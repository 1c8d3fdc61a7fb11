package handler

import (
	"errors"
	"strconv"

	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/response"
	"vetrico-go/internal/service"

	"github.com/gin-gonic/gin"
)

type RelationHandler struct {
	relationService *service.RelationService
}

func NewRelationHandler(relationService *service.RelationService) *RelationHandler {
	return &RelationHandler{relationService: relationService}
}

// ToggleFollow 关注/取关切换
// @Summary 关注或取消关注
// @Description 已关注则取关，未关注则关注，返回动作和最新粉丝数
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param id path int true "目标用户ID"
// @Success 200 {object} response.Response "操作成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /relations/{id}/toggle [post]
func (h *RelationHandler) ToggleFollow(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)
	targetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	result, err := h.relationService.ToggleFollow(currentUserID, targetID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "操作失败")
		return
	}

	response.OK(c, "操作成功", result)
}

// GetFollowing 获取关注列表
// @Summary 获取用户关注列表
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response "获取成功"
// @Router /relations/{id}/following [get]
func (h *RelationHandler) GetFollowing(c *gin.Context) {
	targetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}
	page, pageSize := parsePagination(c)

	data, err := h.relationService.GetFollowing(targetID, page, pageSize)
	if err != nil {
		response.InternalError(c, "获取失败")
		return
	}

	response.OK(c, "获取成功", data)
}

// GetFollowers 获取粉丝列表
// @Summary 获取用户粉丝列表
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response "获取成功"
// @Router /relations/{id}/followers [get]
func (h *RelationHandler) GetFollowers(c *gin.Context) {
	targetID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}
	page, pageSize := parsePagination(c)

	data, err := h.relationService.GetFollowers(targetID, page, pageSize)
	if err != nil {
		response.InternalError(c, "获取失败")
		return
	}

	response.OK(c, "获取成功", data)
}

func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
