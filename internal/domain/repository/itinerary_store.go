package repository

import (
	"context"

	"github.com/itinerary-service/internal/domain"
)

// ItineraryStore - временное хранилище сгенерированных маршрутов
type ItineraryStore interface {
	Save(ctx context.Context, itinerary *domain.Itinerary) error

	// Get возвращает errors.ErrItineraryNotFound если маршрут истёк или не существовал
	Get(ctx context.Context, id string) (*domain.Itinerary, error)
}
