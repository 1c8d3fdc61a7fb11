package repository

import (
	"errors"

	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type CommentLikeRepository struct {
	db *gorm.DB
}

func NewCommentLikeRepository(db *gorm.DB) *CommentLikeRepository {
	return &CommentLikeRepository{db: db}
}

// Toggle 评论点赞切换：存在则删除，不存在则插入，单个事务完成
func (r *CommentLikeRepository) Toggle(userID, commentID int64) (added bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
			Delete(&model.CommentLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			added = false
			return nil
		}
		if err := tx.Create(&model.CommentLike{UserID: userID, CommentID: commentID}).Error; err != nil {
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

// CountByComment 统计评论的点赞数
func (r *CommentLikeRepository) CountByComment(commentID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}

// BatchCheckLiked 批量查询评论点赞状态
func (r *CommentLikeRepository) BatchCheckLiked(userID int64, commentIDs []int64) (map[int64]bool, error) {
	if len(commentIDs) == 0 {
		return map[int64]bool{}, nil
	}

	var likedIDs []int64
	err := r.db.Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &likedIDs).Error
	if err != nil {
		return nil, err
	}

	likedSet := make(map[int64]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = true
	}

	result := make(map[int64]bool, len(commentIDs))
	for _, id := range commentIDs {
		result[id] = likedSet[id]
	}
	return result, nil
}

// BatchCountByComments 批量统计评论点赞数
func (r *CommentLikeRepository) BatchCountByComments(commentIDs []int64) (map[int64]int64, error) {
	if len(commentIDs) == 0 {
		return map[int64]int64{}, nil
	}

	type row struct {
		CommentID int64
		Count     int64
	}
	var rows []row
	err := r.db.Model(&model.CommentLike{}).
		Select("comment_id, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[int64]int64, len(rows))
	for _, r := range rows {
		result[r.CommentID] = r.Count
	}
	return result, nil
}
