package repository

import (
	"errors"

	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type RelationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// ToggleWithNotify 关注切换：存在则删除，不存在则插入
// 新增且不是自关注时，关注通知在同一事务内写入，失败整体回滚
func (r *RelationRepository) ToggleWithNotify(followerID, followID int64) (added bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND follow_id = ?", followerID, followID).
			Delete(&model.Relation{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			added = false
			return nil
		}
		if err := tx.Create(&model.Relation{FollowerID: followerID, FollowID: followID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				added = true
				return nil
			}
			return err
		}
		added = true

		if followerID == followID {
			return nil
		}
		return tx.Create(&model.Notification{
			RecipientID: followID,
			SenderID:    followerID,
			Type:        model.NotificationTypeFollow,
		}).Error
	})
	return added, err
}

// Exists 检查关注关系是否存在
func (r *RelationRepository) Exists(followerID, followID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Relation{}).
		Where("follower_id = ? AND follow_id = ?", followerID, followID).
		Count(&count).Error
	return count > 0, err
}

// CountFollowers 统计粉丝数
func (r *RelationRepository) CountFollowers(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Relation{}).Where("follow_id = ?", userID).Count(&count).Error
	return count, err
}

// CountFollowing 统计关注数
func (r *RelationRepository) CountFollowing(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Relation{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

// GetFollowingIDs 获取用户的关注列表（分页）
func (r *RelationRepository) GetFollowingIDs(userID int64, skip, limit int) ([]int64, error) {
	var followIDs []int64
	err := r.db.Model(&model.Relation{}).
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Pluck("follow_id", &followIDs).Error
	return followIDs, err
}

// GetFollowerIDs 获取用户的粉丝列表（分页）
func (r *RelationRepository) GetFollowerIDs(userID int64, skip, limit int) ([]int64, error) {
	var followerIDs []int64
	err := r.db.Model(&model.Relation{}).
		Where("follow_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Pluck("follower_id", &followerIDs).Error
	return followerIDs, err
}
