package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/securities_account/internal/auth"
	"github.com/securities_account/internal/handlers"
	"github.com/securities_account/internal/models"
	"github.com/securities_account/internal/repositories"
	"github.com/securities_account/internal/services"
	"github.com/securities_account/pkg/logger"
)

// Options 路由所需的依赖，Logger 为空时使用全局 logger
type Options struct {
	DB        *gorm.DB
	Logger    *zap.Logger
	JWTSecret string
	TokenTTL  time.Duration
}

// SetupRoutes 初始化所有路由
func SetupRoutes(router *gin.Engine, opts Options) {
	if opts.Logger == nil {
		opts.Logger = logger.Get()
	}
	router.Use(logger.GinMiddleware(opts.Logger), gin.Recovery())

	applicationRepo := repositories.NewGormApplicationRepository(opts.DB)
	userRepo := repositories.NewGormUserRepository(opts.DB)

	applicationService := services.NewApplicationService(applicationRepo, opts.Logger)
	accountService := services.NewAccountService(userRepo, opts.Logger)

	authHandler := handlers.NewAuthHandler(accountService, opts.JWTSecret, opts.TokenTTL, opts.Logger)
	applicationHandler := handlers.NewApplicationHandler(applicationService, opts.Logger)
	reviewHandler := handlers.NewReviewHandler(applicationService, opts.Logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	{
		// 公共认证路由组
		publicAuthGroup := apiV1.Group("/auth")
		{
			publicAuthGroup.POST("/register", authHandler.Register)
			publicAuthGroup.POST("/login", authHandler.Login)
		}

		jwtMiddleware := auth.JWTMiddleware(opts.JWTSecret)

		protectedAuthGroup := apiV1.Group("/auth")
		protectedAuthGroup.Use(jwtMiddleware)
		{
			protectedAuthGroup.POST("/logout", authHandler.LogoutHandler)
		}

		applicationGroup := apiV1.Group("/applications")
		applicationGroup.Use(jwtMiddleware)
		{
			applicationGroup.POST("", applicationHandler.CreateApplication)
			applicationGroup.GET("/me", applicationHandler.GetMyApplication)
			applicationGroup.GET("/:id", applicationHandler.GetApplicationForUpdate)
			applicationGroup.PUT("/:id", applicationHandler.UpdateApplication)
			applicationGroup.GET("/:id/success", applicationHandler.GetApplicationSuccess)
		}

		reviewGroup := apiV1.Group("/review")
		reviewGroup.Use(jwtMiddleware, auth.RequireRole(models.RoleReviewer))
		{
			reviewGroup.GET("/applications", reviewHandler.ListApplications)
			reviewGroup.GET("/applications/:id", reviewHandler.GetApplication)
			reviewGroup.POST("/applications/:id/status", reviewHandler.SetApplicationStatus)
			reviewGroup.POST("/applications/batch-approve", reviewHandler.BatchApprove)
			reviewGroup.POST("/applications/batch-reject", reviewHandler.BatchReject)
		}
	}
}
