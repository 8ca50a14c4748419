// cmd/search-service/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/api"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/cache"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/config"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/database"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/logger"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/observability"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting search service...",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Postgres with retry ---
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres init failed", zap.Error(err))
	}
	defer pg.Close()

	if err := retryWithBackoff(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return pg.Ping(pingCtx)
	}, 5, 2*time.Second, zapLog, "postgres ping"); err != nil {
		zapLog.Fatal("postgres unreachable", zap.Error(err))
	}

	listingStore := store.NewPostgresListingStore(pg.DB, log)

	// --- Optional redis result cache ---
	var resultCache search.Cache
	if cfg.Search.CacheEnabled {
		rdb, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Warn("redis init failed, continuing without cache", zap.Error(err))
		} else {
			defer rdb.Close()
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			if err := rdb.Ping(pingCtx); err != nil {
				zapLog.Warn("redis unreachable, continuing without cache", zap.Error(err))
			} else {
				resultCache = cache.NewSearchCache(
					rdb.Client,
					time.Duration(cfg.Search.CacheTTL)*time.Second,
					log,
				)
			}
			cancel()
		}
	}

	svc := search.NewService(listingStore, resultCache, cfg.Search.CandidateLimit, log)
	server := api.NewServer(svc, obs, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}

	zapLog.Info("Search service stopped")
}
