package handler

import (
	"errors"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/response"
	"vetrico-go/internal/service"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationService *service.ModerationService
	videoService      *service.VideoService
}

func NewModerationHandler(moderationService *service.ModerationService, videoService *service.VideoService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService, videoService: videoService}
}

// ReportVideo 举报视频
// @Summary 举报视频
// @Description 同一用户重复举报同一视频只记一次
// @Tags 举报
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.ReportCreateRequest true "举报原因"
// @Success 200 {object} response.Response "举报已受理"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/report [post]
func (h *ModerationHandler) ReportVideo(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.ReportCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.moderationService.ReportVideo(userID, videoID, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "举报失败")
		return
	}

	response.OK(c, result.Message, result)
}

// AdminPanel 管理面板
// @Summary 管理面板数据
// @Description 全站统计、待审核认证申请和举报队列
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "获取成功"
// @Failure 403 {object} response.ErrorResponse "需要管理员权限"
// @Router /admin/panel [get]
func (h *ModerationHandler) AdminPanel(c *gin.Context) {
	data, err := h.moderationService.AdminPanel()
	if err != nil {
		response.InternalError(c, "获取失败")
		return
	}

	response.OK(c, "获取成功", data)
}

// ApproveVerification 通过认证申请
// @Summary 通过认证申请
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response "已通过"
// @Router /admin/verifications/{id}/approve [post]
func (h *ModerationHandler) ApproveVerification(c *gin.Context) {
	adminID, _ := middleware.GetCurrentUserID(c)
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.moderationService.ApproveVerification(adminID, userID); err != nil {
		handleModerationError(c, err)
		return
	}

	response.OK(c, "认证申请已通过", nil)
}

// RejectVerification 驳回认证申请
// @Summary 驳回认证申请
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response "已驳回"
// @Router /admin/verifications/{id}/reject [post]
func (h *ModerationHandler) RejectVerification(c *gin.Context) {
	adminID, _ := middleware.GetCurrentUserID(c)
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.moderationService.RejectVerification(adminID, userID); err != nil {
		handleModerationError(c, err)
		return
	}

	response.OK(c, "认证申请已驳回", nil)
}

// DismissReport 驳回举报
// @Summary 驳回举报
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "举报ID"
// @Success 200 {object} response.Response "已驳回"
// @Router /admin/reports/{id}/dismiss [post]
func (h *ModerationHandler) DismissReport(c *gin.Context) {
	reportID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的举报ID")
		return
	}

	if err := h.moderationService.DismissReport(reportID); err != nil {
		handleModerationError(c, err)
		return
	}

	response.OK(c, "举报已驳回", nil)
}

// DeleteVideo 管理端删除视频
// @Summary 管理端删除视频
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "删除成功"
// @Router /admin/videos/{id} [delete]
func (h *ModerationHandler) DeleteVideo(c *gin.Context) {
	adminID, _ := middleware.GetCurrentUserID(c)
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	if err := h.videoService.Delete(videoID, adminID, true); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "删除成功", nil)
}

// DeleteUser 管理端删除用户
// @Summary 管理端删除用户及其全部数据
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response "删除成功"
// @Router /admin/users/{id} [delete]
func (h *ModerationHandler) DeleteUser(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.moderationService.DeleteUser(userID); err != nil {
		handleModerationError(c, err)
		return
	}

	response.OK(c, "删除成功", nil)
}

func handleModerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrReportNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, "服务器内部错误")
	}
}
