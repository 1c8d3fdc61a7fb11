package repository

import (
	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据 ID 查询用户
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名查询用户
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_name = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs 批量查询用户
func (r *UserRepository) GetByIDs(ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	var users []model.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// Create 创建用户
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// UpdateProfile 更新个人资料字段
func (r *UserRepository) UpdateProfile(id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates).Error
}

// SetVerificationStatus 更新认证状态和认证标记
func (r *UserRepository) SetVerificationStatus(id int64, status string, verified bool) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_status": status,
			"is_verified":         verified,
		}).Error
}

// ListPendingVerification 查询待审核认证的用户
func (r *UserRepository) ListPendingVerification() ([]model.User, error) {
	var users []model.User
	err := r.db.Where("verification_status = ?", model.VerificationPending).Find(&users).Error
	return users, err
}

// Count 用户总数
func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

// DeleteCascade 删除用户及其全部关联数据（管理员封禁）
// 视频的级联交给 VideoRepository 的同构逻辑，这里在一个事务里串起来
func (r *UserRepository) DeleteCascade(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var videoIDs []int64
		if err := tx.Model(&model.Video{}).Where("author_id = ?", id).
			Pluck("id", &videoIDs).Error; err != nil {
			return err
		}
		for _, videoID := range videoIDs {
			if err := deleteVideoCascade(tx, videoID); err != nil {
				return err
			}
		}

		// 用户自身产生的边和内容
		if err := tx.Where("user_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR follow_id = ?", id, id).Delete(&model.Relation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR recipient_id = ?", id, id).Delete(&model.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipient_id = ? OR sender_id = ?", id, id).Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reporter_id = ?", id).Delete(&model.Report{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.User{}).Error
	})
}
