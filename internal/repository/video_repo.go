package repository

import (
	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create 创建视频
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// GetByID 根据 ID 查询视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Author").Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Feed 随机取一批视频作为首页流
func (r *VideoRepository) Feed(limit int) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Preload("Author").Order("RANDOM()").Limit(limit).Find(&videos).Error
	return videos, err
}

// ListByAuthor 查询用户发布的视频，最新在前
func (r *VideoRepository) ListByAuthor(authorID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("author_id = ?", authorID).
		Order("id DESC").Find(&videos).Error
	return videos, err
}

// IncrementViewCount 播放量 +1（单调计数，不走事务）
func (r *VideoRepository) IncrementViewCount(id int64) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// UpdateCaption 更新视频描述
func (r *VideoRepository) UpdateCaption(id int64, caption string) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("caption", caption).Error
}

// Count 视频总数
func (r *VideoRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Video{}).Count(&count).Error
	return count, err
}

// DeleteCascade 删除视频及其全部关联行
// 评论点赞 -> 回复 -> 评论 -> 点赞/收藏/举报/反应 -> 视频，单个事务完成
func (r *VideoRepository) DeleteCascade(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteVideoCascade(tx, id)
	})
}

// deleteVideoCascade 在给定事务里级联删除一个视频
func deleteVideoCascade(tx *gorm.DB, videoID int64) error {
	commentIDs := tx.Model(&model.Comment{}).Select("id").Where("video_id = ?", videoID)
	if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&model.CommentLike{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_id = ?", videoID).Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_id = ?", videoID).Delete(&model.Like{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_id = ?", videoID).Delete(&model.Bookmark{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_id = ?", videoID).Delete(&model.Report{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_id = ?", videoID).Delete(&model.Reaction{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", videoID).Delete(&model.Video{}).Error
}
