package kafka

import (
	"context"
	"encoding/json"
	"time"

	"vetrico-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ReactionHandler 处理表情反应事件的回调函数
type ReactionHandler func(event *ReactionEvent) error

// StartReactionConsumer 启动表情反应消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartReactionConsumer(ctx context.Context, brokers []string, topic, groupID string, handler ReactionHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka reaction consumer stopped")
	}()

	logger.Info("Kafka reaction consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var event ReactionEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("Failed to unmarshal reaction event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(&event); err != nil {
			logger.Error("Failed to handle reaction event",
				zap.Int64("video_id", event.VideoID),
				zap.Error(err),
			)
		}
	}
}
