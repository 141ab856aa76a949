package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/xgenai/careers-platform/internal/api"
	"github.com/xgenai/careers-platform/internal/api/handler"
	"github.com/xgenai/careers-platform/internal/core/ports"
	"github.com/xgenai/careers-platform/internal/core/service"
	"github.com/xgenai/careers-platform/internal/infrastructure/config"
	"github.com/xgenai/careers-platform/internal/infrastructure/db/postgres"
	"github.com/xgenai/careers-platform/internal/infrastructure/db/redis"
	"github.com/xgenai/careers-platform/internal/infrastructure/mail"
	"github.com/xgenai/careers-platform/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx := context.Background()

	// --- PostgreSQL ---
	db, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Database.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	if err := postgres.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema initialisation failed")
	}

	// --- Redis (optional) ---
	var (
		rdb        *goredis.Client
		tokenCache ports.TokenCache
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without token cache")
		} else {
			defer rdb.Close()
			tokenCache = redis.NewTokenCache(rdb, log)
		}
	}

	// --- Mail transport ---
	var transport ports.MailTransport
	mailgun := mail.NewMailgun(cfg.Mailgun.APIKey, cfg.Mailgun.Domain, cfg.Mailgun.FromEmail)
	if mailgun.Configured() {
		transport = mailgun
	} else {
		log.Warn().Msg("mailgun not configured, emails will be recorded but not sent")
	}

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	appRepo := postgres.NewApplicationRepository(db)
	internRepo := postgres.NewInternRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	emailRepo := postgres.NewEmailRepository(db)

	// --- Services ---
	notifications := service.NewNotificationService(emailRepo, transport, cfg.IsProduction(), log)
	sessions := service.NewSessionRegistry(sessionRepo, tokenCache, log)
	accounts := service.NewAccountService(userRepo, notifications, tokenCache, service.AdminCredentials{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log)
	applications := service.NewApplicationService(appRepo, internRepo, notifications, log)
	tasks := service.NewTaskService(taskRepo, internRepo, log)

	// --- HTTP layer ---
	e := api.NewRouter(api.Handlers{
		Auth:         handler.NewAuthHandler(accounts, tasks, sessions),
		User:         handler.NewUserHandler(accounts),
		Admin:        handler.NewAdminHandler(accounts, notifications, notifications),
		Applications: handler.NewApplicationHandler(applications),
		Interns:      handler.NewInternHandler(tasks),
		Health:       handler.NewHealthHandler(),
		HealthDeps:   handler.NewHealthDependenciesHandler(db, rdb),
	}, sessions, cfg.CORSOrigins, prometheus.NewRegistry(), log)

	// --- Serve with graceful shutdown ---
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
