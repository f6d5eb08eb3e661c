package router

import (
	"forumapi/internal/handlers"
	"forumapi/internal/middleware"
	"forumapi/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Tokens middleware.AccessTokenDecoder
	// Ping 用于 /healthz，nil 时始终返回 ok
	Ping           func() error
	RateLimitRPS   float64
	RateLimitBurst int
}

func RegisterRoutes(r *gin.Engine, uc *services.UseCases, opts Options) {
	// Handlers
	threadHandler := handlers.NewThreadHandler(uc)
	commentHandler := handlers.NewCommentHandler(uc)
	replyHandler := handlers.NewReplyHandler(uc)
	likeHandler := handlers.NewLikeHandler(uc)
	userHandler := handlers.NewUserHandler(uc)
	authHandler := handlers.NewAuthHandler(uc)

	// 公共路由 (Public Routes)
	r.GET("/healthz", handlers.Healthz(opts.Ping))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/threads/:threadId", threadHandler.Detail) // 帖子详情

	r.POST("/users", userHandler.Register)           // 注册
	r.POST("/authentications", authHandler.Login)    // 登录
	r.PUT("/authentications", authHandler.Refresh)   // 刷新 access token
	r.DELETE("/authentications", authHandler.Logout) // 退出登录

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/threads")
	authorized.Use(middleware.JWTAuth(opts.Tokens))
	if opts.RateLimitRPS > 0 {
		authorized.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	}
	{
		authorized.POST("", threadHandler.Create)
		authorized.POST("/:threadId/comments", commentHandler.Create)
		authorized.DELETE("/:threadId/comments/:commentId", commentHandler.Delete)
		authorized.POST("/:threadId/comments/:commentId/replies", replyHandler.Create)
		authorized.DELETE("/:threadId/comments/:commentId/replies/:replyId", replyHandler.Delete)
		authorized.PUT("/:threadId/comments/:commentId/likes", likeHandler.Toggle)
	}
}
