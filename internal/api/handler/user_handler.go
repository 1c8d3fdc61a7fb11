package handler

import (
	"errors"
	"strconv"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/response"
	"vetrico-go/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "获取成功"
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.userService.GetMe(userID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// GetProfile 获取用户主页
// @Summary 获取用户主页
// @Description 按用户名获取主页数据，含视频列表、关注统计和在线状态
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param username path string true "用户名"
// @Success 200 {object} response.Response "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{username} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	viewerID, _ := middleware.GetCurrentUserID(c)

	data, err := h.userService.GetProfile(c.Param("username"), viewerID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

// UpdateProfile 更新个人资料
// @Summary 更新个人资料
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "资料更新"
// @Success 200 {object} response.Response "更新成功"
// @Failure 400 {object} response.ErrorResponse "内容包含不当词汇"
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	info, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "更新成功", info)
}

// ApplyVerification 申请认证
// @Summary 申请账号认证
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "申请已提交"
// @Failure 409 {object} response.ErrorResponse "已在审核中"
// @Router /users/me/verification [post]
func (h *UserHandler) ApplyVerification(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.userService.ApplyVerification(userID); err != nil {
		if errors.Is(err, service.ErrVerificationPending) {
			response.Conflict(c, err.Error())
			return
		}
		handleUserError(c, err)
		return
	}

	response.OK(c, "认证申请已提交", nil)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidContent):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "服务器内部错误")
	}
}

// parseIDParam 从 URL 路径参数中解析 int64 ID
func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
