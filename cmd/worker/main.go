package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetrico-go/internal/config"
	"vetrico-go/internal/infra/database"
	infraKafka "vetrico-go/internal/infra/kafka"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/logger"

	"go.uber.org/zap"
)

// 表情反应归档 worker：消费实时侧投递的反应事件并写入数据库，
// 后续的热度统计都基于归档表，不影响广播链路
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(&model.Reaction{}); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	topic, ok := cfg.Kafka.Topics["reaction_events"]
	if !ok || topic == "" {
		logger.Fatal("Missing kafka topic: reaction_events")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	reactionRepo := repository.NewReactionRepository(database.Get())

	handler := func(event *infraKafka.ReactionEvent) error {
		return reactionRepo.Create(event.UserID, event.VideoID, event.Emoji, time.Unix(event.SentAt, 0))
	}

	logger.Info("Reaction archive worker started",
		zap.String("topic", topic),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartReactionConsumer(ctx, cfg.Kafka.Brokers, topic, "vetrico-reaction-archiver", handler)
}
