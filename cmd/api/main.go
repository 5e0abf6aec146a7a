package main

// @title Itinerary Service API
// @version 1.0.0
// @description Планировщик многодневных поездок по Шри-Ланке: маршруты по дням с выездом и возвратом в Коломбо.
// @description
// @description Основные возможности:
// @description - Генерация маршрута через ML-сервис рекомендаций или локальное планирование по региональным кластерам
// @description - Экспорт маршрута в PDF с QR-кодом
// @description - Каталог мест и справочники категорий, районов и кластеров
// @description - Управление ML-сервисом (состояние, переобучение)

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/itinerary-service/docs/swagger"
	"github.com/itinerary-service/internal/config"
	httpDelivery "github.com/itinerary-service/internal/delivery/http"
	"github.com/itinerary-service/internal/delivery/http/handler"
	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/infrastructure/pdf"
	"github.com/itinerary-service/internal/infrastructure/recommender"
	"github.com/itinerary-service/internal/pkg/logger"
	"github.com/itinerary-service/internal/repository/cache"
	"github.com/itinerary-service/internal/repository/catalog"
	redisRepo "github.com/itinerary-service/internal/repository/redis"
	"github.com/itinerary-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Itinerary Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalog_driver", cfg.Catalog.Driver),
		zap.Bool("ml_enabled", cfg.ML.Enabled),
	)

	// 3. Open place catalog (postgres or embedded sqlite)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	catalogStore, err := catalog.Open(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to open place catalog", zap.Error(err))
	}
	defer func() {
		if err := catalogStore.Close(); err != nil {
			log.Error("Failed to close place catalog", zap.Error(err))
		}
	}()

	// 4. Connect to Redis; without it the service runs uncached and does not keep itineraries
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, running without cache and catalog change stream", zap.Error(err))
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}

	// 5. Initialize repositories
	placeRepo := catalogStore.Places
	var (
		itineraryStore repository.ItineraryStore
		streamRepo     repository.StreamRepository
		recommenderRep repository.RecommenderRepository
	)
	if redisClient != nil {
		cacheRepo := cache.NewCacheRepository(redisClient)
		placeRepo = cache.NewCachedPlaceRepository(placeRepo, cacheRepo, cfg.Cache.CatalogCacheTTL, log)
		itineraryStore = cache.NewItineraryStore(cacheRepo, cfg.Cache.ItineraryCacheTTL)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
	}
	if cfg.ML.Enabled {
		recommenderRep = recommender.NewClient(&cfg.ML, log)
	}

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	anchor := domain.Anchor{
		Name:  cfg.Planner.AnchorName,
		Point: domain.Point{Lat: cfg.Planner.AnchorLat, Lon: cfg.Planner.AnchorLon},
	}
	builder := usecase.NewDayRouteBuilder(cfg.Planner.EntryCostStub, nil)

	itineraryUC := usecase.NewItineraryUseCase(placeRepo, recommenderRep, itineraryStore, anchor, builder, log)
	placeUC := usecase.NewPlaceUseCase(placeRepo, streamRepo, anchor, log)
	recommenderUC := usecase.NewRecommenderUseCase(recommenderRep, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	renderer := pdf.NewRenderer(cfg.Server.PublicBaseURL, log)
	itineraryHandler := handler.NewItineraryHandler(itineraryUC, placeUC, renderer, log)
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	recommenderHandler := handler.NewRecommenderHandler(recommenderUC, log)

	checks := map[string]httpDelivery.HealthCheck{
		"catalog": catalogStore.Health,
	}
	if redisClient != nil {
		checks["redis"] = redisClient.Health
	}

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, itineraryHandler, placeHandler, recommenderHandler, checks)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
