package main

import (
	"os"
	"syscall"

	"github.com/orderdesk/internal/app"
	"github.com/orderdesk/internal/cache"
	"github.com/orderdesk/internal/config"
	"github.com/orderdesk/internal/logger"
	"github.com/orderdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Bot.Token == "" {
		stdLog.Fatalf("bot token is not configured, set bot.token or BOT_TOKEN")
	}
	if cfg.Auth.AdminPassword == "" {
		stdLog.Printf("warning: auth.admin_password is empty, nobody can pass the access gate")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to initialize database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	if err := models.InitReferenceData(); err != nil {
		stdLog.Fatalf("failed to seed reference data: %v", err)
	}

	if err := cache.InitRedis(&cfg.Redis); err != nil {
		stdLog.Printf("warning: redis unavailable, sessions fall back to memory: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("service exited with error: %v", err)
	}
}
