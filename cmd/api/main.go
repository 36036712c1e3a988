package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	_ "taskearn-backend/docs"
	"taskearn-backend/internal/common/config"
	"taskearn-backend/internal/common/logger"
	"taskearn-backend/internal/common/middleware"
	authhttp "taskearn-backend/internal/features/auth/delivery/http"
	authredis "taskearn-backend/internal/features/auth/repository/redis"
	authservice "taskearn-backend/internal/features/auth/service"
	revenuehttp "taskearn-backend/internal/features/revenue/delivery/http"
	revenueredis "taskearn-backend/internal/features/revenue/repository/redis"
	revenueservice "taskearn-backend/internal/features/revenue/service"
	taskhttp "taskearn-backend/internal/features/task/delivery/http"
	taskredis "taskearn-backend/internal/features/task/repository/redis"
	taskservice "taskearn-backend/internal/features/task/service"
	userhttp "taskearn-backend/internal/features/user/delivery/http"
	userredis "taskearn-backend/internal/features/user/repository/redis"
	userservice "taskearn-backend/internal/features/user/service"
	redisplatform "taskearn-backend/internal/platform/redis"
	"taskearn-backend/internal/seed"
)

// @title           TaskEarn API
// @version         1.0
// @description     API server for the TaskEarn platform: micro-tasks, points-to-dollars earnings and simulated ad revenue.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization
// @description Session token issued by login, sent as "Bearer <token>"

// @tag.name auth
// @tag.description Registration, login and session management

// @tag.name tasks
// @tag.description Task catalog and completions

// @tag.name earnings
// @tag.description Earnings ledger, ad-view tracking and payout requests

// @tag.name users
// @tag.description User directory and admin console

func main() {
	cfg := config.Load()

	logger.Init("taskearn-backend", cfg.Debug)

	logger.Info().
		Str("version", "1.0.0").
		Bool("debug", cfg.Debug).
		Msg("Starting TaskEarn Backend")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	redisClient, err := redisplatform.Open(ctx, redisAddr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to Redis")
		os.Exit(1)
	}
	defer redisClient.Close()

	logger.Info().Str("addr", redisAddr).Msg("Redis connection established")

	userRepository := userredis.NewUserRepository(redisClient.Client)
	sessionRepository := authredis.NewSessionRepository(redisClient.Client)
	taskRepository := taskredis.NewTaskRepository(redisClient.Client)
	completionRepository := taskredis.NewCompletionRepository(redisClient.Client)
	adViewRepository := revenueredis.NewAdViewRepository(redisClient.Client)
	snapshotRepository := revenueredis.NewSnapshotRepository(redisClient.Client)
	payoutRepository := revenueredis.NewPayoutRepository(redisClient.Client)

	userSvc := userservice.NewUserService(userRepository)
	authSvc := authservice.NewAuthService(userRepository, sessionRepository, time.Duration(cfg.Session.TTLHours)*time.Hour)
	taskSvc := taskservice.NewTaskService(taskRepository, completionRepository, userSvc)
	revenueSvc := revenueservice.NewRevenueService(completionRepository, adViewRepository, snapshotRepository, payoutRepository)

	logger.Info().Msg("Services initialized")

	if cfg.Seed.Enabled {
		if err := seed.EnsureDefaults(ctx, userRepository, taskRepository, snapshotRepository); err != nil {
			logger.Error().Err(err).Msg("Failed to seed default data")
			os.Exit(1)
		}
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "X-Request-ID"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.Use(middleware.SessionAuth(authSvc))

	v1 := router.Group("/api/v1")
	authhttp.NewAuthHandler(authSvc).RegisterRoutes(v1)
	taskhttp.NewTaskHandler(taskSvc).RegisterRoutes(v1)
	revenuehttp.NewRevenueHandler(revenueSvc).RegisterRoutes(v1)
	userhttp.NewUserHandler(userSvc).RegisterRoutes(v1)

	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "taskearn-backend",
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		readyCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := redisClient.Ping(readyCtx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "taskearn-backend",
		})
	})

	logger.Info().Msg("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
