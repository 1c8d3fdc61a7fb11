package repository

import (
	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// CreateWithReward 创建评论
// 评论者的奖励金币和给 notifyUserID 的评论通知在同一事务内写入，
// 任一失败时评论不落库；notifyUserID 为评论者自己时不写通知
func (r *CommentRepository) CreateWithReward(comment *model.Comment, notifyUserID, reward int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if reward > 0 {
			if err := tx.Model(&model.User{}).Where("id = ?", comment.UserID).
				UpdateColumn("coins", gorm.Expr("coins + ?", reward)).Error; err != nil {
				return err
			}
		}
		if notifyUserID == comment.UserID {
			return nil
		}
		return tx.Create(&model.Notification{
			RecipientID: notifyUserID,
			SenderID:    comment.UserID,
			Type:        model.NotificationTypeComment,
			PostID:      &comment.VideoID,
		}).Error
	})
}

// GetByID 根据 ID 查询评论
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("User").Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByVideo 查询视频的全部评论（含回复），平铺返回，最新在前
// 树结构由上层按 parent_id 迭代重建，避免递归查询
// id 作为排序决胜项，时间戳相同的回复不会排到根评论前面
func (r *CommentRepository) ListByVideo(videoID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").
		Where("video_id = ?", videoID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

// CountByVideo 统计视频的评论数（含回复）
func (r *CommentRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

// FlipLikedByCreator 翻转作者赞过标记，返回翻转后的值
func (r *CommentRepository) FlipLikedByCreator(id int64) (bool, error) {
	var flipped bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.Where("id = ?", id).First(&comment).Error; err != nil {
			return err
		}
		flipped = !comment.IsLikedByCreator
		return tx.Model(&model.Comment{}).Where("id = ?", id).
			UpdateColumn("is_liked_by_creator", flipped).Error
	})
	return flipped, err
}

// DeleteCascade 删除评论及其回复和相关点赞，单个事务完成
func (r *CommentRepository) DeleteCascade(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		replyIDs := tx.Model(&model.Comment{}).Select("id").Where("parent_id = ?", id)
		if err := tx.Where("comment_id IN (?)", replyIDs).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("parent_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Comment{}).Error
	})
}
