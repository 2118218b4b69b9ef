package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Krishna-debug223/Rent-vs-Buy/config"
	httpLayer "github.com/Krishna-debug223/Rent-vs-Buy/http"
	"github.com/Krishna-debug223/Rent-vs-Buy/logger"
	"github.com/Krishna-debug223/Rent-vs-Buy/repository"
	"github.com/Krishna-debug223/Rent-vs-Buy/service"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.Load()
			if addr != "" {
				cfg.Addr = addr
			}
			return runServer(cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides RVB_ADDR)")
	return cmd
}

// newCache prefers redis and falls back to memory when it is unset or unreachable.
func newCache(cfg config.Config) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.HistorySize), func() {}
	}

	rc := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		log.Printf("Warning: redis at %s unreachable, using in-memory cache: %v", cfg.RedisAddr, err)
		rc.Close()
		return repository.NewMemoryCache(cfg.HistorySize), func() {}
	}

	log.Printf("Using redis cache at %s (ttl %s)", cfg.RedisAddr, cfg.CacheTTL)
	return rc, func() {
		if err := rc.Close(); err != nil {
			log.Printf("Error closing redis client: %v", err)
		}
	}
}

func runServer(cfg config.Config) error {
	if rot := logger.Setup(cfg.LogFile, cfg.MaxLogSizeMB, cfg.MaxLogBackups); rot != nil {
		defer rot.Close()
	}

	cache, closeCache := newCache(cfg)
	defer closeCache()

	history := repository.NewSimulationRepositoryMemory(cfg.HistorySize)

	loanService := service.NewLoanService(cache)
	simulationService := service.NewSimulationService(history, cache)
	sweepService := service.NewSweepService(cfg.SweepWorkers)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(
		rateLimiter,
		httpLayer.NewLoanHandler(loanService),
		httpLayer.NewSimulationHandler(simulationService),
		httpLayer.NewSweepHandler(sweepService),
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}
