package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixmygame/backend/internal/config"
	"fixmygame/backend/internal/handler"
	fmghttp "fixmygame/backend/internal/http"
	"fixmygame/backend/internal/logger"
	"fixmygame/backend/internal/repository"
	"fixmygame/backend/internal/scheduler"
	"fixmygame/backend/internal/service"
	"fixmygame/backend/internal/service/ai"
)

// memorySweepInterval controls how often the in-memory counter store drops
// expired day buckets.
const memorySweepInterval = time.Hour

func main() {
	if err := run(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	provider, err := ai.NewProvider(ai.Config{
		Provider: cfg.AIProvider,
		APIKey:   cfg.AIAPIKey,
		BaseURL:  cfg.AIBaseURL,
		Model:    cfg.AIModel,
	})
	if err != nil {
		return err
	}

	counters, cleanup, err := initCounters(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	quota := service.NewQuotaService(counters, cfg.DailyLimit, cfg.QuotaTTL)
	diagnosis := service.NewDiagnosisService(provider, ai.NewRateLimiter(cfg.AIRateLimit))

	e := fmghttp.NewRouter(handler.NewDiagnoseHandler(quota, diagnosis), cfg.StaticDir)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.Addr, "provider", provider.Name())
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	return nil
}

// initCounters picks the counter backend: Redis when configured, otherwise
// the in-memory store plus its expiry sweeper.
func initCounters(cfg config.Config) (repository.CounterRepository, func(), error) {
	if cfg.RedisAddr != "" {
		redisRepo, err := repository.NewRedisCounterRepository(repository.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using redis counter store", "addr", cfg.RedisAddr)
		return redisRepo, func() {
			if err := redisRepo.Close(); err != nil {
				logger.Error("close redis counter store", "error", err)
			}
		}, nil
	}

	logger.Warn("no redis address configured, using in-memory counters; daily limits are enforced per instance only")
	memRepo := repository.NewMemoryCounterRepository()
	sweeper := scheduler.New("counter sweep", memorySweepInterval, func(ctx context.Context) error {
		if dropped := memRepo.Sweep(); dropped > 0 {
			logger.Debug("dropped expired counters", "count", dropped)
		}
		return nil
	})
	sweeper.Start()
	return memRepo, sweeper.Stop, nil
}
