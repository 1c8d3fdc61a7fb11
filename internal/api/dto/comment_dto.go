package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=500"`
	ParentID *int64 `json:"parent_id"`
}

// CommentInfo 评论信息，根评论携带回复列表
type CommentInfo struct {
	ID               int64         `json:"id"`
	UserID           int64         `json:"user_id"`
	VideoID          int64         `json:"video_id"`
	Username         string        `json:"username"`
	Avatar           *string       `json:"avatar"`
	Content          string        `json:"content"`
	ParentID         *int64        `json:"parent_id"`
	IsVideoOwner     bool          `json:"is_video_owner"`
	LikedByCreator   bool          `json:"liked_by_creator"`
	LikeCount        int64         `json:"like_count"`
	UserLiked        bool          `json:"user_liked"`
	CreatedAt        time.Time     `json:"created_at"`
	Replies          []CommentInfo `json:"replies"`
}

// CommentLikeResult 评论点赞结果
type CommentLikeResult struct {
	Action       string `json:"action"` // added / removed
	LikeCount    int64  `json:"like_count"`
	CreatorLiked bool   `json:"creator_liked"`
}
