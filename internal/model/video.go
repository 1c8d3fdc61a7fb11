package model

import "time"

// Video 视频模型
// 点赞数和评论数按 likes/comments 表实时统计，不做冗余字段；
// 播放量是唯一的单调冗余计数器
type Video struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	AuthorID  int64     `gorm:"not null;index:idx_videos_author_id;comment:视频作者ID" json:"author_id"`
	Caption   string    `gorm:"size:500;comment:视频描述" json:"caption"`
	Category  string    `gorm:"size:50;default:'Genel';comment:视频分类" json:"category"`
	PlayURL   string    `gorm:"size:500;comment:视频播放地址" json:"play_url"`
	CoverURL  string    `gorm:"size:500;comment:视频封面地址" json:"cover_url"`
	ViewCount int64     `gorm:"not null;default:0;comment:播放量" json:"view_count"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_videos_created_at;comment:创建时间" json:"created_at"`

	// 关联关系
	Author   User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Likes    []Like    `gorm:"foreignKey:VideoID" json:"likes,omitempty"`
	Comments []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
