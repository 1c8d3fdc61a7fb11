package model

import "time"

// User 用户模型
type User struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName           string    `gorm:"size:150;not null;uniqueIndex;comment:用户名" json:"user_name"`
	Password           string    `gorm:"size:255;not null;comment:密码" json:"-"` // json:"-" 序列化时忽略密码
	Bio                string    `gorm:"size:250;comment:个人简介" json:"bio"`
	Avatar             *string   `gorm:"size:500;comment:用户头像" json:"avatar"`
	Coins              int64     `gorm:"not null;default:50;comment:金币余额" json:"coins"`
	LastBonusDate      *string   `gorm:"size:10;comment:上次签到奖励日期(YYYY-MM-DD)" json:"last_bonus_date"`
	IsAdmin            bool      `gorm:"not null;default:false;comment:管理员标识" json:"is_admin"`
	IsVerified         bool      `gorm:"not null;default:false;comment:认证标识" json:"is_verified"`
	VerificationStatus string    `gorm:"size:20;not null;default:'none';comment:认证状态" json:"verification_status"`
	CreatedAt          time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`

	// 关联关系
	Videos        []Video        `gorm:"foreignKey:AuthorID" json:"videos,omitempty"`
	Notifications []Notification `gorm:"foreignKey:RecipientID" json:"notifications,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// VerificationStatus 取值
const (
	VerificationNone     = "none"
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)
