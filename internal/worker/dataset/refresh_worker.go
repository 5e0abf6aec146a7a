package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/worker"
)

const (
	workerName = "dataset-refresh"
	ackTimeout = 5 * time.Second
)

// Refresher - выгрузка датасета и переобучение модели
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshWorker слушает изменения каталога и обновляет датасет ML-сервиса.
// Пачка событий, пришедших подряд, схлопывается в один refresh.
type RefreshWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	refresher  Refresher
}

func NewRefreshWorker(
	streamRepo repository.StreamRepository,
	refresher Refresher,
	consumerGroup string,
	logger *zap.Logger,
) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker: worker.NewBaseWorker(workerName, consumerGroup, logger),
		streamRepo: streamRepo,
		refresher:  refresher,
	}
}

// Start блокируется до Stop или отмены ctx
func (w *RefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCatalogChanged, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamCatalogChanged, w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	logger.Info("Worker started",
		zap.String("stream", domain.StreamCatalogChanged),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()))

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			batch := append([]domain.StreamMessage{msg}, drain(messages)...)
			w.handleBatch(ctx, batch)
		}
	}
}

// drain забирает всё, что уже лежит в канале, не блокируясь
func drain(messages <-chan domain.StreamMessage) []domain.StreamMessage {
	var out []domain.StreamMessage
	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return out
			}
			out = append(out, msg)
		default:
			return out
		}
	}
}

func (w *RefreshWorker) handleBatch(ctx context.Context, batch []domain.StreamMessage) {
	logger := w.Logger()

	for _, msg := range batch {
		var event domain.CatalogChangedEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Malformed catalog event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}
		logger.Debug("Catalog changed",
			zap.String("message_id", msg.ID),
			zap.String("place_id", event.PlaceID),
			zap.String("change_type", event.ChangeType))
	}

	start := time.Now()
	if err := w.refresher.Refresh(ctx); err != nil {
		logger.Error("Dataset refresh failed",
			zap.Int("events", len(batch)),
			zap.Error(err))
	} else {
		logger.Info("Dataset refreshed",
			zap.Int("events", len(batch)),
			zap.Duration("took", time.Since(start)))
	}

	// Повторов нет: сообщения подтверждаются при любом исходе обновления
	ackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ackTimeout)
	defer cancel()
	for _, msg := range batch {
		if err := w.streamRepo.AckMessage(ackCtx, domain.StreamCatalogChanged, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Warn("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}
}
