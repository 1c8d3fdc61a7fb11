package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vetrico-go/internal/config"
	"vetrico-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// ReactionEvent 表情反应事件消息体
// 实时侧广播后即丢，事件流交给 worker 归档
type ReactionEvent struct {
	UserID  int64  `json:"user_id"`
	VideoID int64  `json:"video_id"`
	Emoji   string `json:"emoji"`
	SentAt  int64  `json:"sent_at"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendReactionEvent 发送表情反应事件到 Kafka
func SendReactionEvent(ctx context.Context, topic string, event *ReactionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reaction event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("video-%d", event.VideoID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send reaction event: %w", err)
	}

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
