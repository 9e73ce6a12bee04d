package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mdSafdarKhan/redis/internal/cache"
	"github.com/mdSafdarKhan/redis/internal/config"
	"github.com/mdSafdarKhan/redis/internal/domain"
	"github.com/mdSafdarKhan/redis/internal/events"
	"github.com/mdSafdarKhan/redis/internal/handler"
	"github.com/mdSafdarKhan/redis/internal/repository"
	"github.com/mdSafdarKhan/redis/internal/seed"
	"github.com/mdSafdarKhan/redis/internal/service"
	"github.com/mdSafdarKhan/redis/pkg/database"
	pkglog "github.com/mdSafdarKhan/redis/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "user-service",
	})
	logger := pkglog.L()

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("user-service stopped with error")
	}
	logger.Info().Msg("user-service stopped")
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = pkglog.WithLogger(ctx, logger)

	// Connect to database using GORM
	if cfg.Database.Driver == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.FilePath), 0o755); err != nil {
			return fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}
	db, err := database.New(&database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		FilePath:        cfg.Database.FilePath,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db, &domain.UserModel{}); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("database migration completed")

	userRepo := repository.NewGormUserRepository(db)

	if cfg.Seed.Enabled {
		if _, err := seed.NewSeeder(userRepo, seed.DefaultUsers).Run(ctx); err != nil {
			return err
		}
	}

	userCache, err := newUserCache(cfg)
	if err != nil {
		return err
	}
	defer userCache.Close()
	logger.Info().Str("driver", cfg.Cache.Driver).Msg("user cache ready")

	publisher, err := newPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	userService := service.NewUserService(userRepo, userCache, publisher, service.CachePolicy{
		MinFollowers: cfg.Cache.MinFollowers,
		TTL:          cfg.Cache.TTL,
	})

	// Setup Gin router
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))
	handler.NewHandler(userService).RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", addr).Int64("min_followers", cfg.Cache.MinFollowers).Msg("user-service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newUserCache(cfg *config.Config) (cache.UserCache, error) {
	switch cfg.Cache.Driver {
	case "memory":
		return cache.NewMemoryUserCache(cfg.Cache.Prefix), nil
	default:
		return cache.NewRedisUserCache(cfg.Redis, cfg.Cache.Prefix)
	}
}

func newPublisher(cfg *config.Config) (events.Publisher, error) {
	if !cfg.Events.Enabled {
		return events.NoopPublisher{}, nil
	}
	return events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic, cfg.Events.Partitions)
}
