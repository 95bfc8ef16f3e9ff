package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/promptdiff-backend/docs"
	httphandlers "github.com/rafabene/promptdiff-backend/internal/handlers/http"
	"github.com/rafabene/promptdiff-backend/internal/handlers/middleware"
	"github.com/rafabene/promptdiff-backend/internal/infrastructure/auth"
	"github.com/rafabene/promptdiff-backend/internal/infrastructure/config"
	"github.com/rafabene/promptdiff-backend/internal/infrastructure/i18n"
	"github.com/rafabene/promptdiff-backend/internal/infrastructure/logging"
	"github.com/rafabene/promptdiff-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/promptdiff-backend/internal/infrastructure/storage"
	"github.com/rafabene/promptdiff-backend/internal/services"
)

//	@title			PromptDiff API
//	@version		1.0
//	@description	API de publicação e curtida de comparações antes/depois de prompts de IA
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting promptdiff backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar storage provider (S3 -> filesystem local em dev)
	storageProvider, err := storage.NewProvider(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize storage provider", "error", err)
		log.Fatal(err)
	}

	// Inicializar identity gate / emissor de tokens
	tokenService, err := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	if err != nil {
		logger.Error("failed to initialize token service", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	promptRepo := postgres.NewPromptRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, tokenService, logger)
	userService := services.NewUserService(userRepo, storageProvider, logger)
	promptService := services.NewPromptService(promptRepo, likeRepo, uow, storageProvider, logger, cfg.Prompts.DefaultModel)
	likeService := services.NewLikeService(likeRepo, promptRepo, uow, logger)
	queryService := services.NewQueryService(promptRepo, likeRepo, userRepo, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService, queryService)
	promptHandler := httphandlers.NewPromptHandler(promptService, likeService, queryService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Uploads locais servidos estaticamente em modo dev
	if cfg.IsDevelopment() && cfg.Storage.UploadDir != "" {
		router.Static("/uploads", cfg.Storage.UploadDir)
	}

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// Prompts
		prompts := v1.Group("/prompts")
		{
			prompts.GET("", authMiddleware.OptionalCaller(), promptHandler.ListPrompts)
			prompts.GET("/:id", authMiddleware.OptionalCaller(), promptHandler.GetPrompt)
			prompts.POST("", authMiddleware.RequireCaller(), promptHandler.CreatePrompt)
			prompts.PUT("/:id", authMiddleware.RequireCaller(), promptHandler.UpdatePrompt)
			prompts.DELETE("/:id", authMiddleware.RequireCaller(), promptHandler.DeletePrompt)
			prompts.POST("/:id/like", authMiddleware.RequireCaller(), promptHandler.ToggleLike)
		}

		// Users
		users := v1.Group("/users", authMiddleware.RequireCaller())
		{
			users.PUT("/me", userHandler.UpdateProfile)
			users.GET("/me/prompts", userHandler.MyPrompts)
			users.GET("/me/likes", userHandler.LikedPrompts)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
