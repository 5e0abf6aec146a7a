package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/pkg/errors"
)

const itineraryKeyPrefix = "itinerary:"

type itineraryStore struct {
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewItineraryStore - маршруты живут в кеше ttl и затем недоступны
func NewItineraryStore(cache repository.CacheRepository, ttl time.Duration) repository.ItineraryStore {
	return &itineraryStore{cache: cache, ttl: ttl}
}

func (s *itineraryStore) Save(ctx context.Context, itinerary *domain.Itinerary) error {
	data, err := json.Marshal(itinerary)
	if err != nil {
		return fmt.Errorf("failed to encode itinerary: %w", err)
	}
	return s.cache.Set(ctx, itineraryKeyPrefix+itinerary.ID, data, s.ttl)
}

func (s *itineraryStore) Get(ctx context.Context, id string) (*domain.Itinerary, error) {
	data, err := s.cache.Get(ctx, itineraryKeyPrefix+id)
	if err != nil {
		return nil, errors.ErrCacheError
	}
	if data == nil {
		return nil, errors.ErrItineraryNotFound
	}

	var it domain.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return nil, errors.ErrCacheError.WithDetails(map[string]interface{}{"cause": err.Error()})
	}
	return &it, nil
}
