package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

// CatalogSnapshotKey - ключ снимка каталога
const CatalogSnapshotKey = "catalog:places"

// cachedPlaceRepository кеширует ListAll и сбрасывает снимок при любых изменениях.
// Ошибки кеша не ломают чтение: запрос уходит в основное хранилище.
type cachedPlaceRepository struct {
	next   repository.PlaceRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedPlaceRepository(
	next repository.PlaceRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) repository.PlaceRepository {
	return &cachedPlaceRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *cachedPlaceRepository) ListAll(ctx context.Context) ([]*domain.Place, error) {
	if data, err := r.cache.Get(ctx, CatalogSnapshotKey); err == nil && data != nil {
		var places []*domain.Place
		if err := json.Unmarshal(data, &places); err == nil {
			return places, nil
		}
		r.logger.Warn("Corrupted catalog snapshot in cache, reloading")
	}

	places, err := r.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(places); err == nil {
		if err := r.cache.Set(ctx, CatalogSnapshotKey, data, r.ttl); err != nil {
			r.logger.Warn("Failed to cache catalog snapshot", zap.Error(err))
		}
	}
	return places, nil
}

func (r *cachedPlaceRepository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	return r.next.List(ctx, filter)
}

func (r *cachedPlaceRepository) Count(ctx context.Context, filter domain.PlaceFilter) (int, error) {
	return r.next.Count(ctx, filter)
}

func (r *cachedPlaceRepository) GetByID(ctx context.Context, placeID string) (*domain.Place, error) {
	return r.next.GetByID(ctx, placeID)
}

func (r *cachedPlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	if err := r.next.Create(ctx, place); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedPlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	if err := r.next.Update(ctx, place); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedPlaceRepository) Delete(ctx context.Context, placeID string) error {
	if err := r.next.Delete(ctx, placeID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedPlaceRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, CatalogSnapshotKey); err != nil {
		r.logger.Warn("Failed to invalidate catalog snapshot", zap.Error(err))
	}
}
