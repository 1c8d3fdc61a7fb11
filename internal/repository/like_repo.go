package repository

import (
	"errors"

	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// ToggleWithReward 点赞切换：存在则删除，不存在则插入
// 新增且不是自赞时，点赞通知和奖励金币在同一事务内写入，任一失败整体回滚
// 并发插入撞到唯一索引时按切换成功处理（行已存在即是调用方要的状态）
func (r *LikeRepository) ToggleWithReward(userID, videoID, authorID, reward int64) (added bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND video_id = ?", userID, videoID).
			Delete(&model.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			added = false
			return nil
		}
		if err := tx.Create(&model.Like{UserID: userID, VideoID: videoID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				added = true
				return nil
			}
			return err
		}
		added = true

		if userID == authorID {
			return nil
		}
		notification := &model.Notification{
			RecipientID: authorID,
			SenderID:    userID,
			Type:        model.NotificationTypeLike,
			PostID:      &videoID,
		}
		if err := tx.Create(notification).Error; err != nil {
			return err
		}
		if reward > 0 {
			return tx.Model(&model.User{}).Where("id = ?", userID).
				UpdateColumn("coins", gorm.Expr("coins + ?", reward)).Error
		}
		return nil
	})
	return added, err
}

// Exists 检查点赞是否存在
func (r *LikeRepository) Exists(userID, videoID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error
	return count > 0, err
}

// CountByVideo 统计视频的点赞数
func (r *LikeRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

// Count 点赞总数（管理面板统计）
func (r *LikeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Count(&count).Error
	return count, err
}

// BatchCheckLiked 批量查询点赞状态
func (r *LikeRepository) BatchCheckLiked(userID int64, videoIDs []int64) (map[int64]bool, error) {
	if len(videoIDs) == 0 {
		return map[int64]bool{}, nil
	}

	var likedIDs []int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND video_id IN ?", userID, videoIDs).
		Pluck("video_id", &likedIDs).Error
	if err != nil {
		return nil, err
	}

	likedSet := make(map[int64]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = true
	}

	result := make(map[int64]bool, len(videoIDs))
	for _, id := range videoIDs {
		result[id] = likedSet[id]
	}
	return result, nil
}
