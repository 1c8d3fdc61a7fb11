package main

import (
	"fmt"
	"net/http"

	"vetrico-go/internal/api/handler"
	"vetrico-go/internal/api/middleware"
	"vetrico-go/internal/api/router"
	"vetrico-go/internal/config"
	"vetrico-go/internal/infra/database"
	infraKafka "vetrico-go/internal/infra/kafka"
	infraRedis "vetrico-go/internal/infra/redis"
	"vetrico-go/internal/model"
	"vetrico-go/internal/realtime"
	"vetrico-go/internal/repository"
	"vetrico-go/internal/service"
	"vetrico-go/pkg/badwords"
	"vetrico-go/pkg/logger"

	_ "vetrico-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Vetrico API
// @version 1.0
// @description 短视频社交平台 API 服务

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Like{},
		&model.Bookmark{},
		&model.Comment{},
		&model.CommentLike{},
		&model.Relation{},
		&model.Notification{},
		&model.Message{},
		&model.Report{},
		&model.Reaction{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis（可选，失败则未读计数降级为直查数据库）
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis init failed, unread cache disabled", zap.Error(err))
	} else {
		defer infraRedis.Close()
	}

	// 初始化Kafka生产者
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 屏蔽词过滤器，配置中可追加词条
	filter := badwords.New(cfg.Badwords.Extra...)

	// 实时接入层
	presence := realtime.NewPresenceRegistry()
	hub := realtime.NewHub(presence)

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	commentLikeRepo := repository.NewCommentLikeRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	reportRepo := repository.NewReportRepository(db)
	coinRepo := repository.NewCoinRepository(db)

	notificationService := service.NewNotificationService(notificationRepo, infraRedis.Get())
	coinService := service.NewCoinService(coinRepo, videoRepo, notificationService, &cfg.Coin)
	authService := service.NewAuthService(userRepo, filter, &cfg.Coin)
	userService := service.NewUserService(userRepo, videoRepo, relationRepo, likeRepo, commentRepo, filter, presence)
	relationService := service.NewRelationService(relationRepo, userRepo, notificationService)
	videoService := service.NewVideoService(videoRepo, likeRepo, commentRepo, coinService, filter)
	likeService := service.NewLikeService(likeRepo, videoRepo, notificationService, cfg.Coin.LikeReward)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, videoRepo, likeRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, commentLikeRepo, videoRepo, notificationService, filter, cfg.Coin.CommentReward)
	chatService := service.NewChatService(messageRepo, userRepo, filter, hub, presence)
	reactionService := service.NewReactionService(hub, cfg.Kafka.Topics["reaction_events"])
	moderationService := service.NewModerationService(reportRepo, userRepo, videoRepo, likeRepo, notificationService)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	relationHandler := handler.NewRelationHandler(relationService)
	videoHandler := handler.NewVideoHandler(videoService, likeService)
	commentHandler := handler.NewCommentHandler(commentService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	coinHandler := handler.NewCoinHandler(coinService)
	chatHandler := handler.NewChatHandler(chatService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	moderationHandler := handler.NewModerationHandler(moderationService, videoService)
	wsHandler := handler.NewWsHandler(hub, chatService, reactionService, &cfg.Websocket)

	// 管理员中间件（需要查数据库确认身份）
	adminMiddleware := middleware.AdminRequired(func(userID int64) (bool, error) {
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return false, err
		}
		return user.IsAdmin, nil
	})

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r,
		authHandler, userHandler, relationHandler, videoHandler, commentHandler,
		bookmarkHandler, coinHandler, chatHandler, notificationHandler,
		moderationHandler, wsHandler, adminMiddleware)

	// 启动HTTP服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func rootHandler(c *gin.Context) {
	cfg := config.Get()
	c.JSON(http.StatusOK, gin.H{
		"name":    cfg.App.Name,
		"version": cfg.App.Version,
	})
}
