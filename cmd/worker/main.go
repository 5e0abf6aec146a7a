package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/config"
	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/infrastructure/recommender"
	"github.com/itinerary-service/internal/pkg/logger"
	"github.com/itinerary-service/internal/repository/cache"
	"github.com/itinerary-service/internal/repository/catalog"
	redisRepo "github.com/itinerary-service/internal/repository/redis"
	"github.com/itinerary-service/internal/usecase"
	"github.com/itinerary-service/internal/worker"
	"github.com/itinerary-service/internal/worker/dataset"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Dataset Refresh Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("dataset_path", cfg.ML.DatasetPath),
		zap.Bool("ml_enabled", cfg.ML.Enabled))

	// 3. Open place catalog
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

	// 4. Connect to Redis (required: the worker reads the catalog change stream)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	var recommenderRep repository.RecommenderRepository
	if cfg.ML.Enabled {
		recommenderRep = recommender.NewClient(&cfg.ML, log)
	}

	// 6. Initialize use cases
	anchor := domain.Anchor{
		Name:  cfg.Planner.AnchorName,
		Point: domain.Point{Lat: cfg.Planner.AnchorLat, Lon: cfg.Planner.AnchorLon},
	}
	refreshUC := usecase.NewDatasetRefreshUseCase(catalogStore.Places, recommenderRep, anchor, cfg.ML.DatasetPath, log)

	// 7. Initialize workers
	refreshWorker := dataset.NewRefreshWorker(streamRepo, refreshUC, cfg.Worker.ConsumerGroup, log)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(worker.DefaultShutdownTimeout, log)
	workerManager.Register(refreshWorker)

	// 9. Setup graceful shutdown
	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	if err := workerManager.Start(runCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Stop first so an in-flight refresh can finish before the context is cancelled
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	runCancel()

	log.Info("Worker shutdown complete")
}
