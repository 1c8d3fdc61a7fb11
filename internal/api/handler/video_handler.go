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

type VideoHandler struct {
	videoService *service.VideoService
	likeService  *service.LikeService
}

func NewVideoHandler(videoService *service.VideoService, likeService *service.LikeService) *VideoHandler {
	return &VideoHandler{videoService: videoService, likeService: likeService}
}

// Publish 发布视频
// @Summary 发布视频
// @Description 视频文件已由上传服务落盘，这里只登记元数据
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VideoCreateRequest true "视频信息"
// @Success 201 {object} response.Response "发布成功"
// @Failure 400 {object} response.ErrorResponse "内容包含不当词汇"
// @Router /videos [post]
func (h *VideoHandler) Publish(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	var req dto.VideoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	info, err := h.videoService.Publish(userID, &req)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.Created(c, "发布成功", info)
}

// Feed 首页视频流
// @Summary 首页视频流
// @Description 随机返回一批视频；当日首次拉取时发放签到奖励
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param limit query int false "数量" default(20)
// @Success 200 {object} response.Response "获取成功"
// @Router /videos/feed [get]
func (h *VideoHandler) Feed(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	data, err := h.videoService.Feed(userID, limit)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

// GetVideo 视频详情
// @Summary 视频详情
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	info, err := h.videoService.GetByID(videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// IncrementView 上报播放
// @Summary 上报一次播放
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "上报成功"
// @Router /videos/{id}/view [post]
func (h *VideoHandler) IncrementView(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	views, err := h.videoService.IncrementView(videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "上报成功", gin.H{"view_count": views})
}

// UpdateCaption 更新视频描述
// @Summary 更新视频描述
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.VideoUpdateRequest true "新描述"
// @Success 200 {object} response.Response "更新成功"
// @Failure 403 {object} response.ErrorResponse "无权操作"
// @Router /videos/{id} [put]
func (h *VideoHandler) UpdateCaption(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.VideoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	info, err := h.videoService.UpdateCaption(videoID, userID, req.Caption)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "更新成功", info)
}

// DeleteVideo 删除视频
// @Summary 删除视频
// @Description 作者本人删除自己的视频，连带删除全部评论、点赞、收藏和举报
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 403 {object} response.ErrorResponse "无权操作"
// @Router /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	if err := h.videoService.Delete(videoID, userID, false); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "删除成功", nil)
}

// ToggleLike 点赞/取消点赞
// @Summary 点赞或取消点赞
// @Description 已点赞则取消，未点赞则点赞；新增点赞通知作者并奖励点赞者金币
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "操作成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/like [post]
func (h *VideoHandler) ToggleLike(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	result, err := h.likeService.Toggle(userID, videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "操作成功", result)
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrInvalidContent):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "服务器内部错误")
	}
}
