package model

import "time"

// Bookmark 视频收藏模型，(user_id, video_id) 唯一
type Bookmark struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_video_bookmark;index:idx_bookmarks_user_id;comment:收藏用户ID" json:"user_id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_user_video_bookmark;index:idx_bookmarks_video_id;comment:被收藏视频ID" json:"video_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
