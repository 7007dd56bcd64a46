package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/qs3c/crm_go_server/config"
	"github.com/qs3c/crm_go_server/internal/api"
	"github.com/qs3c/crm_go_server/internal/api/handler"
	"github.com/qs3c/crm_go_server/internal/database"
	"github.com/qs3c/crm_go_server/internal/pkg/logger"
	"github.com/qs3c/crm_go_server/internal/pkg/metrics"
	"github.com/qs3c/crm_go_server/internal/pkg/oss"
	"github.com/qs3c/crm_go_server/internal/repository"
	"github.com/qs3c/crm_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}
	zapLogger.Info("Database connected")

	// 初始化 OSS（未配置时头像上传不可用，其余功能不受影响）
	var ossClient *oss.Client
	if cfg.OSS.Endpoint != "" {
		ossClient, err = oss.NewClient(&cfg.OSS)
		if err != nil {
			zapLogger.Warn("OSS not available, avatar upload disabled", zap.Error(err))
			ossClient = nil
		}
	}

	// 初始化指标
	m := metrics.New(cfg.Metrics.Prefix)

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	contactRepo := repository.NewContactRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	socialStatRepo := repository.NewSocialStatRepository(db)

	// 初始化 Service
	usageService := service.NewUsageService(contactRepo, subscriptionRepo, cfg)
	authService := service.NewAuthService(userRepo, usageService, cfg)
	userService := service.NewUserService(userRepo, usageService, ossClient)
	contactService := service.NewContactService(contactRepo)
	interactionService := service.NewInteractionService(interactionRepo, contactRepo)
	socialService := service.NewSocialService(socialStatRepo, contactRepo)
	exportService := service.NewExportService(contactRepo, socialStatRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, usageService)
	contactHandler := handler.NewContactHandler(contactService, interactionService, socialService, exportService, m)
	interactionHandler := handler.NewInteractionHandler(interactionService)
	socialHandler := handler.NewSocialHandler(socialService)
	plansHandler := handler.NewPlansHandler(cfg)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		userHandler,
		contactHandler,
		interactionHandler,
		socialHandler,
		plansHandler,
		usageService,
		m,
		zapLogger,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Server starting", zap.String("addr", addr))
	if err := engine.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
