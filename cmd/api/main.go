package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"erp-admin/config"
	_ "erp-admin/docs" // Swagger docs
	"erp-admin/internal/actions"
	"erp-admin/internal/erp"
	"erp-admin/internal/httpserver"
	"erp-admin/internal/middleware"
	"erp-admin/internal/workspace"
	"erp-admin/pkg/apiclient"
	"erp-admin/pkg/log"
	"erp-admin/pkg/notify"
	"erp-admin/pkg/querycache"
	"erp-admin/pkg/session"
	"erp-admin/pkg/telegram"
)

// @title       ERP Admin API
// @description Data-access layer of the ERP admin dashboard: paginated, list and search endpoints per entity.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ERP admin...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "ERP API: %s (auth mode %s)", cfg.ERPAPI.BaseURL, cfg.Auth.Mode)

	// 3. Session provider
	var sessions session.Provider
	switch cfg.Auth.Mode {
	case config.AuthModeStatic:
		sessions = session.NewStatic(cfg.Auth.Token)
	case config.AuthModeOAuth2:
		sessions = session.NewOAuth2(ctx, session.OAuth2Config{
			Grant:        cfg.Auth.OAuth2.Grant,
			ClientID:     cfg.Auth.OAuth2.ClientID,
			ClientSecret: cfg.Auth.OAuth2.ClientSecret,
			TokenURL:     cfg.Auth.OAuth2.TokenURL,
			Scopes:       cfg.Auth.OAuth2.Scopes,
			RefreshToken: cfg.Auth.OAuth2.RefreshToken,
		})
	default:
		sessions = session.NewForward()
	}

	// 4. ERP client and entity catalog
	client, err := apiclient.New(apiclient.Config{
		BaseURL:    cfg.ERPAPI.BaseURL,
		Timeout:    cfg.ERPAPI.Timeout,
		RatePerSec: cfg.ERPAPI.RatePerSec,
		Burst:      cfg.ERPAPI.Burst,
	}, sessions, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize ERP client: ", err)
		return
	}

	catalog, err := erp.NewCatalog(client)
	if err != nil {
		logger.Error(ctx, "Failed to build entity catalog: ", err)
		return
	}

	// 5. Notifications
	notifiers := []notify.Notifier{notify.NewLog(logger)}
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		notifiers = append(notifiers, notify.NewTelegram(bot, cfg.Telegram.ChatID, cfg.Telegram.NotifySuccess, logger))
		logger.Info(ctx, "Telegram notifications enabled")
	}

	// 6. Workspaces
	workspaces := workspace.NewStore(workspace.Config{
		TTL:         cfg.Workspace.TTL,
		MaxSessions: cfg.Workspace.MaxSessions,
		InboxSize:   cfg.Workspace.InboxSize,
		Cache: querycache.Config{
			MaxEntries: cfg.Cache.MaxEntries,
			TTL:        cfg.Cache.TTL,
		},
	}, notify.Multi(notifiers...), logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Catalog:     catalog,
		Workspaces:  workspaces,
		Sessions:    sessions,
		SearchPolicy: actions.SearchPolicy{
			MinQueryLength: cfg.Search.MinQueryLength,
			DegradeOnError: cfg.Search.DegradeOnError,
		},
		Middleware: middleware.Config{
			RequireBearer:   cfg.Auth.Mode == config.AuthModeForward,
			RateLimitPerMin: cfg.RateLimit.PerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
