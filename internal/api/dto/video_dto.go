package dto

import "time"

// VideoInfo 视频信息
type VideoInfo struct {
	ID           int64     `json:"id"`
	AuthorID     int64     `json:"author_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	Caption      string    `json:"caption"`
	Category     string    `json:"category"`
	PlayURL      string    `json:"play_url"`
	CoverURL     string    `json:"cover_url"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// VideoCreateRequest 发布视频请求（文件已由外部上传服务落盘）
type VideoCreateRequest struct {
	Caption  string `json:"caption" binding:"max=500"`
	Category string `json:"category" binding:"max=50"`
	PlayURL  string `json:"play_url" binding:"required,max=500"`
	CoverURL string `json:"cover_url" binding:"max=500"`
}

// VideoUpdateRequest 更新视频描述请求
type VideoUpdateRequest struct {
	Caption string `json:"caption" binding:"required,max=500"`
}

// FeedData 首页视频流数据
type FeedData struct {
	Videos       []VideoInfo `json:"videos"`
	BonusGranted bool        `json:"bonus_granted"`
	BonusAmount  int64       `json:"bonus_amount,omitempty"`
}

// GiftResult 打赏结果
type GiftResult struct {
	Amount     int64 `json:"amount"`
	NewBalance int64 `json:"new_balance"`
}
