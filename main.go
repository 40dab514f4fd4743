package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"sci-simulator/config"
	httpLayer "sci-simulator/http"
	"sci-simulator/repository"
	"sci-simulator/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logger := config.NewLogger(cfg)

	scenarios, err := config.LoadScenarios(cfg.ScenariosFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load scenarios")
	}

	simulationRepo := repository.NewSimulationRepositoryMemory()
	cache := newCache(cfg, logger)

	explanationService := service.NewExplanationService(service.ExplanationConfig{
		APIKey:  cfg.LLM.APIKey,
		APIURL:  cfg.LLM.APIURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.ExplanationTimeout(),
	}, logger)

	simulationService := service.NewSimulationService(simulationRepo, cache, explanationService, logger)

	simulationHandler := httpLayer.NewSimulationHandler(simulationService, logger)
	scenarioHandler := httpLayer.NewScenarioHandler(scenarios)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(simulationHandler, scenarioHandler, rateLimiter, logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("SCI simulator listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.WithError(err).Error("Server failed to start")
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Error during server shutdown")
	}

	logger.Info("Server exited")
}

// newCache prefers Redis when configured and reachable, and falls back to the
// in-process cache otherwise.
func newCache(cfg *config.Config, logger *logrus.Logger) repository.CacheRepository {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR not set, caching projections in memory")
		return repository.NewMockCache()
	}

	redisCache := repository.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ReadTimeout)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		logger.WithError(err).WithField("addr", cfg.Redis.Addr).
			Warn("Redis unreachable, caching projections in memory")
		redisCache.Close()
		return repository.NewMockCache()
	}

	logger.WithField("addr", cfg.Redis.Addr).Info("Caching projections in Redis")
	return redisCache
}
