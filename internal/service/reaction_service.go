package service

import (
	"context"
	"time"

	"vetrico-go/internal/infra/kafka"
	"vetrico-go/internal/realtime"
	"vetrico-go/pkg/logger"

	"go.uber.org/zap"
)

type ReactionService struct {
	pusher Pusher
	topic  string // 为空时不投递事件流
}

func NewReactionService(pusher Pusher, topic string) *ReactionService {
	return &ReactionService{pusher: pusher, topic: topic}
}

// Broadcast 向全部在线连接广播表情反应，发送方自己也会收到
// 事件流投递是尽力而为，失败只记日志，不影响广播
func (s *ReactionService) Broadcast(userID, videoID int64, emoji string) {
	s.pusher.Broadcast(realtime.EventAnimateReact, realtime.ReactionPayload{
		VideoID: videoID,
		Emoji:   emoji,
	})

	if s.topic == "" {
		return
	}

	event := &kafka.ReactionEvent{
		UserID:  userID,
		VideoID: videoID,
		Emoji:   emoji,
		SentAt:  time.Now().Unix(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := kafka.SendReactionEvent(ctx, s.topic, event); err != nil {
			logger.Warn("表情反应事件投递失败",
				zap.Int64("user_id", userID),
				zap.Int64("video_id", videoID),
				zap.Error(err))
		}
	}()
}
