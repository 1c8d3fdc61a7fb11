package handler

import (
	"errors"

	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/response"
	"vetrico-go/internal/service"

	"github.com/gin-gonic/gin"
)

type CoinHandler struct {
	coinService *service.CoinService
}

func NewCoinHandler(coinService *service.CoinService) *CoinHandler {
	return &CoinHandler{coinService: coinService}
}

// Balance 查询余额
// @Summary 查询金币余额
// @Tags 金币
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "获取成功"
// @Router /coins/balance [get]
func (h *CoinHandler) Balance(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	balance, err := h.coinService.Balance(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "获取失败")
		return
	}

	response.OK(c, "获取成功", gin.H{"coins": balance})
}

// SendGift 给视频作者送礼
// @Summary 给视频作者送礼
// @Description 从当前用户扣除固定金额并转入视频作者账户，余额不足时不发生任何变更
// @Tags 金币
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "送礼成功"
// @Failure 402 {object} response.ErrorResponse "金币余额不足"
// @Failure 400 {object} response.ErrorResponse "不能给自己的视频送礼"
// @Router /videos/{id}/gift [post]
func (h *CoinHandler) SendGift(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	result, err := h.coinService.SendGift(userID, videoID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVideoNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrGiftToSelf):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInsufficientCoins):
			response.PaymentRequired(c, err.Error())
		default:
			response.InternalError(c, "送礼失败")
		}
		return
	}

	response.OK(c, "送礼成功", result)
}
