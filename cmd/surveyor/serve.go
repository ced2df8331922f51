package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SAP-F-2025/surveyor-service/internal/cache"
	"github.com/SAP-F-2025/surveyor-service/internal/config"
	"github.com/SAP-F-2025/surveyor-service/internal/handlers"
	"github.com/SAP-F-2025/surveyor-service/internal/repositories"
	"github.com/SAP-F-2025/surveyor-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/surveyor-service/internal/services"
	"github.com/SAP-F-2025/surveyor-service/internal/utils"
	"github.com/SAP-F-2025/surveyor-service/pkg"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg, newLogger(cfg))
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger utils.Logger) error {
	deps := services.Dependencies{
		Logger:   logger.Slog(),
		CacheTTL: cfg.CacheTTL,
	}

	if cfg.DatabaseURL != "" {
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return err
		}
		if err := postgres.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		deps.Repo = postgres.NewAdministrationPostgreSQL(db)
		logger.Info("Using PostgreSQL administration store")
	} else {
		deps.Repo = repositories.NewMemoryAdministrationRepository()
		logger.Warn("DATABASE_URL not set, administrations are kept in memory")
	}

	if cfg.RedisURL != "" {
		client, err := pkg.NewRedisClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()
		deps.Cache = cache.NewRedisCache(client, "surveyor", logger.Slog())
	}

	publisher, err := cfg.Events.CreateEventPublisher(logger.Slog())
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.LogError(err, "Failed to close event publisher")
		}
	}()
	deps.Publisher = publisher

	manager, err := services.NewServiceManager(deps)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), utils.RequestID(), utils.LoggerMiddleware(logger), utils.ContextLogger(logger))
	handlers.NewHandlerManager(manager, logger).SetupRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "addr", server.Addr, "environment", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
