package dto

// UserInfo 用户信息
type UserInfo struct {
	ID                 int64   `json:"id"`
	Username           string  `json:"user_name"`
	Bio                string  `json:"bio"`
	Avatar             *string `json:"avatar"`
	Coins              int64   `json:"coins"`
	IsAdmin            bool    `json:"is_admin"`
	IsVerified         bool    `json:"is_verified"`
	VerificationStatus string  `json:"verification_status"`
}

// ProfileData 个人主页数据
type ProfileData struct {
	User          UserInfo    `json:"user"`
	Videos        []VideoInfo `json:"videos"`
	FollowCount   int64       `json:"follow_count"`
	FollowerCount int64       `json:"follower_count"`
	IsFollowing   bool        `json:"is_following"`
	IsOnline      bool        `json:"is_online"`
}

// UpdateProfileRequest 更新个人资料请求
type UpdateProfileRequest struct {
	Bio    *string `json:"bio" binding:"omitempty,max=250"`
	Avatar *string `json:"avatar" binding:"omitempty,max=500"`
}
