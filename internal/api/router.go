package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/qs3c/crm_go_server/config"
	"github.com/qs3c/crm_go_server/internal/api/handler"
	"github.com/qs3c/crm_go_server/internal/api/middleware"
	"github.com/qs3c/crm_go_server/internal/pkg/metrics"
	"github.com/qs3c/crm_go_server/internal/service"
)

type Router struct {
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	contactHandler     *handler.ContactHandler
	interactionHandler *handler.InteractionHandler
	socialHandler      *handler.SocialHandler
	plansHandler       *handler.PlansHandler
	usageService       *service.UsageService
	metrics            *metrics.Metrics
	logger             *zap.Logger
	cfg                *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	contactHandler *handler.ContactHandler,
	interactionHandler *handler.InteractionHandler,
	socialHandler *handler.SocialHandler,
	plansHandler *handler.PlansHandler,
	usageService *service.UsageService,
	m *metrics.Metrics,
	logger *zap.Logger,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:        authHandler,
		userHandler:        userHandler,
		contactHandler:     contactHandler,
		interactionHandler: interactionHandler,
		socialHandler:      socialHandler,
		plansHandler:       plansHandler,
		usageService:       usageService,
		metrics:            m,
		logger:             logger,
		cfg:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLog(r.logger))
	engine.Use(middleware.Metrics(r.metrics))

	// Prometheus 指标
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.metrics.Registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api/v1")
	{
		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		// 公开接口 - 套餐定价表
		api.GET("/plans", r.plansHandler.List)

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			// 用户
			user := authenticated.Group("/user")
			{
				user.GET("/profile", r.userHandler.GetProfile)
				user.PUT("/profile", r.userHandler.UpdateProfile)
				user.POST("/avatar", r.userHandler.UploadAvatar)
				user.GET("/usage", r.userHandler.GetUsage)
			}

			// 联系人
			contacts := authenticated.Group("/contacts")
			{
				contacts.GET("", r.contactHandler.List)
				contacts.POST("", middleware.ContactLimit(r.usageService, r.metrics), r.contactHandler.Create)
				contacts.GET("/export", r.contactHandler.Export)
				contacts.GET("/stages", r.contactHandler.Stages)
				contacts.GET("/stage-counts", r.contactHandler.StageCounts)
				contacts.GET("/:id", r.contactHandler.Get)
				contacts.PUT("/:id", r.contactHandler.Update)
				contacts.DELETE("/:id", r.contactHandler.Delete)
				contacts.POST("/:id/duplicate", middleware.ContactLimit(r.usageService, r.metrics), r.contactHandler.Duplicate)

				// 跟进记录（按联系人）
				contacts.GET("/:id/interactions", r.interactionHandler.List)
				contacts.POST("/:id/interactions", r.interactionHandler.Create)

				// 社媒数据
				contacts.GET("/:id/social-stats", r.socialHandler.List)
				contacts.PUT("/:id/social-stats", r.socialHandler.BulkUpdate)
				contacts.GET("/:id/social-stats/:platform", r.socialHandler.GetPlatform)
				contacts.DELETE("/:id/social-stats/:platform", r.socialHandler.Delete)
			}

			// 跟进记录（按记录 ID）
			authenticated.PUT("/interactions/:id", r.interactionHandler.Update)
			authenticated.DELETE("/interactions/:id", r.interactionHandler.Delete)
		}
	}

	return engine
}
