package main

import (
	"context"
	"log"
	"time"

	"beyondylc/config"
	"beyondylc/database"
	"beyondylc/directory"
	"beyondylc/handlers"
	"beyondylc/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer logger.Sync()

	// Create context with timeout for initial connections
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := directory.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	var store directory.SnapshotStore
	if redisClient != nil {
		store = directory.NewRedisSnapshotStore(redisClient,
			time.Duration(cfg.SnapshotTTLMinutes)*time.Minute)
		logger.Info("directory snapshots persisted to Redis", zap.String("addr", cfg.RedisAddr))
	}

	dirs := directory.NewManager(db, store, logger)

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api", middleware.AuthRequired(cfg.JWTSecret))
	{
		api.GET("/directory", handlers.GetDirectory(dirs, logger))
		api.POST("/directory/:id/join", handlers.JoinProject(dirs, logger))
		api.POST("/directory/:id/leave", handlers.LeaveProject(dirs, logger))

		api.POST("/projects", handlers.CreateProject(db, dirs, logger))
		api.GET("/projects", handlers.ListProjects(db))
		api.GET("/projects/:id", handlers.GetProject(db))
		api.PUT("/projects/:id", handlers.UpdateProject(db, dirs, logger))
		api.DELETE("/projects/:id", handlers.DeleteProject(dirs, logger))

		api.GET("/profiles/me", handlers.GetMyProfile(db))
		api.PUT("/profiles/me", handlers.UpsertMyProfile(db, logger))
		api.GET("/profiles/:id", handlers.GetProfile(db))
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
