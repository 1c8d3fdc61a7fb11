package dto

// ToggleResult 切换型操作（关注/点赞/收藏）的统一结果
type ToggleResult struct {
	Action string `json:"action"` // added / removed
	Count  int64  `json:"count"`
}

// RelationUserInfo 关注关系中的用户简要信息
type RelationUserInfo struct {
	ID         int64   `json:"id"`
	Username   string  `json:"user_name"`
	Avatar     *string `json:"avatar"`
	IsVerified bool    `json:"is_verified"`
}

// RelationListData 关注/粉丝列表数据
type RelationListData struct {
	Users      []RelationUserInfo `json:"users"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int64              `json:"total_pages"`
}
