package repository

import (
	"time"

	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Create 归档一条表情反应（worker 消费 Kafka 事件后调用）
func (r *ReactionRepository) Create(userID, videoID int64, emoji string, sentAt time.Time) error {
	return r.db.Create(&model.Reaction{
		UserID:    userID,
		VideoID:   videoID,
		Emoji:     emoji,
		CreatedAt: sentAt,
	}).Error
}

// CountByVideo 统计视频收到的表情反应数
func (r *ReactionRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Reaction{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
