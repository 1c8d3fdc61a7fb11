package repository

import (
	"errors"

	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Toggle 收藏切换：存在则删除，不存在则插入，单个事务完成
func (r *BookmarkRepository) Toggle(userID, videoID int64) (added bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND video_id = ?", userID, videoID).
			Delete(&model.Bookmark{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			added = false
			return nil
		}
		if err := tx.Create(&model.Bookmark{UserID: userID, VideoID: videoID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				added = true
				return nil
			}
			return err
		}
		added = true
		return nil
	})
	return added, err
}

// CountByVideo 统计视频的收藏数
func (r *BookmarkRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Bookmark{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

// ListVideoIDsByUser 查询用户收藏的视频 ID，最新在前
func (r *BookmarkRepository) ListVideoIDsByUser(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Bookmark{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("video_id", &ids).Error
	return ids, err
}
