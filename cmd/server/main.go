package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/securities_account/configs"
	_ "github.com/securities_account/docs"
	"github.com/securities_account/internal/routes"
	"github.com/securities_account/pkg/db"
	"github.com/securities_account/pkg/logger"
)

// @title 證券帳戶申請系統 API
// @version 1.0
// @description 證券帳戶線上申請與審核服務
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := configs.LoadConfig()

	log := logger.Init(cfg.Environment, cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库连接
	if err := db.InitDB(cfg.DBPath, log); err != nil {
		log.Fatal("数据库初始化失败", zap.Error(err))
	}
	defer db.CloseDB(log)

	router := gin.New()

	// 设置API路由
	routes.SetupRoutes(router, routes.Options{
		DB:        db.GetDB(),
		Logger:    log,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	})

	log.Info("服务启动", zap.String("port", cfg.ServerPort), zap.String("env", cfg.Environment))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Error("服务运行失败", zap.Error(err))
	}
}
