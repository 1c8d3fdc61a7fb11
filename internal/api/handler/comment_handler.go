package handler

import (
	"errors"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/response"
	"vetrico-go/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create 发表评论
// @Summary 发表评论或回复
// @Description 带 parent_id 为一级回复，只允许回复根评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} response.Response "评论成功"
// @Failure 400 {object} response.ErrorResponse "内容包含不当词汇/回复层级超限"
// @Router /videos/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	info, err := h.commentService.Create(userID, videoID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, "评论成功", info)
}

// List 评论列表
// @Summary 视频评论树
// @Description 根评论按时间倒序，回复按时间正序挂在根评论下
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	viewerID, _ := middleware.GetCurrentUserID(c)
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	comments, err := h.commentService.ListByVideo(videoID, viewerID)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "获取成功", comments)
}

// ToggleLike 评论点赞切换
// @Summary 点赞或取消点赞评论
// @Description 视频作者的每次切换同时翻转评论的作者赞过标记
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response "操作成功"
// @Failure 404 {object} response.ErrorResponse "评论不存在"
// @Router /comments/{id}/like [post]
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	commentID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	result, err := h.commentService.ToggleLike(userID, commentID)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "操作成功", result)
}

// Delete 删除评论
// @Summary 删除评论
// @Description 评论作者或视频作者可删除，连带删除全部回复
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 403 {object} response.ErrorResponse "无权删除"
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	commentID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	if err := h.commentService.Delete(commentID, userID); err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "删除成功", nil)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrParentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCommentNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrInvalidContent),
		errors.Is(err, service.ErrParentVideoMismatch),
		errors.Is(err, service.ErrReplyDepthExceeded):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "服务器内部错误")
	}
}
