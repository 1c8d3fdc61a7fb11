package model

import "time"

// Report 视频举报模型，(reporter_id, video_id) 唯一
type Report struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:举报ID" json:"id"`
	ReporterID int64     `gorm:"not null;uniqueIndex:uq_reporter_video;comment:举报用户ID" json:"reporter_id"`
	VideoID    int64     `gorm:"not null;uniqueIndex:uq_reporter_video;index:idx_reports_video_id;comment:被举报视频ID" json:"video_id"`
	Reason     string    `gorm:"size:200;comment:举报原因" json:"reason"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:举报时间" json:"created_at"`

	// 关联关系
	Reporter User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
