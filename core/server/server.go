package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rsvp-manager/core/cache"
	"rsvp-manager/core/config"
	"rsvp-manager/core/constants"
	"rsvp-manager/core/database"
	"rsvp-manager/core/logger"
	"rsvp-manager/core/middleware"
	"rsvp-manager/core/queue"
	"rsvp-manager/core/storage"
	"rsvp-manager/modules/auth"
	"rsvp-manager/modules/guest"
	"rsvp-manager/modules/notification"
	"rsvp-manager/modules/reminder"
	"rsvp-manager/modules/rsvp"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires configuration, infrastructure and all modules, then serves until
// SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.LogLevel, cfg.Server.Env == "local")

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return err
	}

	cacheClient, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return err
	}
	defer cacheClient.Close()

	store, err := storage.NewStorage(context.Background(), cfg.S3)
	if err != nil {
		logger.Warn("S3 storage unavailable, xlsx export disabled", "error", err)
		store = nil
	}

	q := queue.NewQueue(cfg.Redis)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestID())

	mw := middleware.NewMiddleware(cacheClient)

	api := e.Group("/api/v1")
	public := api.Group("/public")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	notifService := notification.Init(api, db, mw)
	guest.Init(api, db, mw, store)
	rsvp.Init(public, db, notifService)
	auth.Init(api, db, cacheClient)
	reminder.Init(api, db, mw, q)

	q.Start()
	defer q.Shutdown()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
		}
	}()
	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port, "env", cfg.Server.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(ctx)
}
