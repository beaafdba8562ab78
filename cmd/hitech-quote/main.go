package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hitech-quote/internal/api"
	"hitech-quote/internal/api/handlers"
	"hitech-quote/internal/repository"
	"hitech-quote/internal/service"
	"hitech-quote/pkg/config"
	"hitech-quote/pkg/logger"

	"go.uber.org/zap"
)

// @title Hitech Quote API
// @version 1.0
// @description Product recommendation and quote generation service for materials testing equipment.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@hitechtesting.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Hitech Quote service")

	catalog := repository.NewCatalogRepository(cfg.Catalog.CSVPath, appLogger)

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		appLogger.Info("Using Redis cache", zap.String("addr", cfg.Redis.Addr))
		cache = repository.NewRedisCache(cfg.Redis.Addr)
	} else {
		appLogger.Info("REDIS_ADDR not set, using in-memory cache")
		cache = repository.NewMemoryCache()
	}

	llmService := service.NewLLMService(&cfg.OpenRouter, appLogger)
	scorer := service.NewMatchScorer(service.DefaultKeywordRules())

	recService := service.NewRecommendationService(
		catalog, scorer, llmService, cache, cfg.Redis.SummaryTTL, appLogger,
	)
	quoteService := service.NewQuoteService(
		catalog,
		service.NewFlatRatePricing(service.FlatEquipmentPrice),
		llmService,
		cfg.OpenRouter.Timeout,
		appLogger,
	)

	healthHandler := handlers.NewHealthHandler(catalog)
	productHandler := handlers.NewProductHandler(catalog, recService, appLogger)
	quoteHandler := handlers.NewQuoteHandler(quoteService, appLogger)

	app := api.SetupRouter(healthHandler, productHandler, quoteHandler)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
