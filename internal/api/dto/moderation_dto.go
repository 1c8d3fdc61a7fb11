package dto

import "time"

// ReportCreateRequest 举报请求
type ReportCreateRequest struct {
	Reason string `json:"reason" binding:"max=200"`
}

// ReportResult 举报结果
type ReportResult struct {
	Duplicate bool   `json:"duplicate"`
	Message   string `json:"message"`
}

// ReportInfo 举报信息（管理端）
type ReportInfo struct {
	ID           int64     `json:"id"`
	ReporterID   int64     `json:"reporter_id"`
	ReporterName string    `json:"reporter_name"`
	VideoID      int64     `json:"video_id"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminStats 管理面板统计
type AdminStats struct {
	Users   int64 `json:"users"`
	Videos  int64 `json:"videos"`
	Likes   int64 `json:"likes"`
	Reports int64 `json:"reports"`
}

// AdminPanelData 管理面板数据
type AdminPanelData struct {
	Stats                AdminStats `json:"stats"`
	PendingVerifications []UserInfo `json:"pending_verifications"`
	Reports              []ReportInfo `json:"reports"`
}
