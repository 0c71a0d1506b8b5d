// backend-go/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/api"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/cache"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/config"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/repository/postgres"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/service"
	"github.com/andresuchdata/shelfpilot/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize cache (noop when disabled)
	plannerCache, err := cache.NewPlannerCache(cfg.Cache)
	if err != nil {
		log.Warn().Err(err).Msg("planner cache unavailable, continuing without")
		plannerCache = cache.NewNoopPlannerCache()
	}

	// Initialize repositories and services
	itemRepo := postgres.NewItemRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)

	services := &api.Services{
		PlannerService: service.NewPlannerService(itemRepo, plannerCache),
		OrderService:   service.NewOrderService(itemRepo, orderRepo, ledgerRepo, plannerCache),
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
