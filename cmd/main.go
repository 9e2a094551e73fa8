package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/sirenwatch/sirenwatch/internal/config"
	"github.com/sirenwatch/sirenwatch/internal/feed"
	v1 "github.com/sirenwatch/sirenwatch/internal/handler/http/v1"
	"github.com/sirenwatch/sirenwatch/internal/lease"
	"github.com/sirenwatch/sirenwatch/internal/posting"
	"github.com/sirenwatch/sirenwatch/internal/repository"
	"github.com/sirenwatch/sirenwatch/internal/service"
	"github.com/sirenwatch/sirenwatch/internal/social"
	"github.com/sirenwatch/sirenwatch/pkg/logger"
	"github.com/sirenwatch/sirenwatch/pkg/postgres"
	redisclient "github.com/sirenwatch/sirenwatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/sirenwatch/sirenwatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SirenWatch Sync API
// @version 1.0
// @description Multi-tenant emergency-feed synchronization and social posting service.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown of the workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	repo := repository.New(dbpool, redisClient)

	// Outbound clients
	feedClient := feed.NewClient(cfg.FeedBaseURL, cfg.WeatherBaseURL, cfg.FeedTimeout, cfg.WeatherTimeout, log)
	socialClient := social.NewClient(cfg.SocialBaseURL, cfg.SocialAppID, cfg.SocialAppSecret, cfg.SocialTimeout, log)

	// Posting pipeline: queue publisher plus the delivery worker
	postPublisher := posting.NewRedisPublisher(redisClient)
	postWorker := posting.NewWorker(redisClient, repo, socialClient, log, cfg)
	postWorker.Start(ctx)

	syncLease := lease.New(redisClient, cfg.SyncLeaseTTL)
	syncService := service.NewSyncService(repo, feedClient, syncLease, postPublisher, log, cfg)

	// Optional internal ticker; 0 leaves triggering to the external scheduler.
	if cfg.SyncInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.SyncInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if _, err := syncService.SyncAll(ctx); err != nil {
						log.WithError(err).Error("Scheduled sync pass failed")
					}
				}
			}
		}()
		log.Infof("Internal sync ticker started with interval %s", cfg.SyncInterval)
	}

	handler := v1.NewHandler(syncService, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
