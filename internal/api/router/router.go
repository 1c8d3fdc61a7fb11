package router

import (
	"vetrico-go/internal/api/handler"
	"vetrico-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	relationHandler *handler.RelationHandler,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	bookmarkHandler *handler.BookmarkHandler,
	coinHandler *handler.CoinHandler,
	chatHandler *handler.ChatHandler,
	notificationHandler *handler.NotificationHandler,
	moderationHandler *handler.ModerationHandler,
	wsHandler *handler.WsHandler,
	adminMiddleware gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// --- 用户模块 ---
	users := v1.Group("/users", middleware.AuthRequired())
	{
		users.GET("/me", userHandler.GetMe)
		users.PUT("/me", userHandler.UpdateProfile)
		users.POST("/me/verification", userHandler.ApplyVerification)
		users.GET("/me/bookmarks", bookmarkHandler.List)
		users.GET("/:username", userHandler.GetProfile)
	}

	// --- 关注关系模块 ---
	relations := v1.Group("/relations", middleware.AuthRequired())
	{
		relations.POST("/:id/toggle", relationHandler.ToggleFollow)
		relations.GET("/:id/following", relationHandler.GetFollowing)
		relations.GET("/:id/followers", relationHandler.GetFollowers)
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos", middleware.AuthRequired())
	{
		videos.POST("", videoHandler.Publish)
		videos.GET("/feed", videoHandler.Feed)
		videos.GET("/:id", videoHandler.GetVideo)
		videos.PUT("/:id", videoHandler.UpdateCaption)
		videos.DELETE("/:id", videoHandler.DeleteVideo)
		videos.POST("/:id/view", videoHandler.IncrementView)
		videos.POST("/:id/like", videoHandler.ToggleLike)
		videos.POST("/:id/bookmark", bookmarkHandler.Toggle)
		videos.POST("/:id/gift", coinHandler.SendGift)
		videos.POST("/:id/report", moderationHandler.ReportVideo)
		videos.GET("/:id/comments", commentHandler.List)
		videos.POST("/:id/comments", commentHandler.Create)
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments", middleware.AuthRequired())
	{
		comments.POST("/:id/like", commentHandler.ToggleLike)
		comments.DELETE("/:id", commentHandler.Delete)
	}

	// --- 金币模块 ---
	coins := v1.Group("/coins", middleware.AuthRequired())
	{
		coins.GET("/balance", coinHandler.Balance)
	}

	// --- 私信模块 ---
	messages := v1.Group("/messages", middleware.AuthRequired())
	{
		messages.GET("", chatHandler.ListConversations)
		messages.GET("/:id", chatHandler.GetConversation)
		messages.POST("/:id/read", chatHandler.MarkRead)
	}

	// --- 通知模块 ---
	notifications := v1.Group("/notifications", middleware.AuthRequired())
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread", notificationHandler.UnreadCount)
	}

	// --- 管理模块 ---
	admin := v1.Group("/admin", middleware.AuthRequired(), adminMiddleware)
	{
		admin.GET("/panel", moderationHandler.AdminPanel)
		admin.POST("/verifications/:id/approve", moderationHandler.ApproveVerification)
		admin.POST("/verifications/:id/reject", moderationHandler.RejectVerification)
		admin.POST("/reports/:id/dismiss", moderationHandler.DismissReport)
		admin.DELETE("/videos/:id", moderationHandler.DeleteVideo)
		admin.DELETE("/users/:id", moderationHandler.DeleteUser)
	}

	// --- 实时接入 ---
	r.GET("/ws", middleware.AuthRequired(), wsHandler.Serve)
}
