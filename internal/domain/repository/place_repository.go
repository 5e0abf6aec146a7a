package repository

import (
	"context"

	"github.com/itinerary-service/internal/domain"
)

// PlaceRepository - каталог достопримечательностей
type PlaceRepository interface {
	// ListAll возвращает снимок всего каталога в порядке place_id
	ListAll(ctx context.Context) ([]*domain.Place, error)

	// List возвращает страницу каталога с фильтром по категориям (без учёта регистра) и району
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error)

	// Count возвращает число мест под фильтром без учёта Limit и Offset
	Count(ctx context.Context, filter domain.PlaceFilter) (int, error)

	// GetByID возвращает место или errors.ErrPlaceNotFound
	GetByID(ctx context.Context, placeID string) (*domain.Place, error)

	// Create добавляет место в каталог, errors.ErrPlaceAlreadyExists при повторе place_id
	Create(ctx context.Context, place *domain.Place) error

	// Update обновляет место, errors.ErrPlaceNotFound если его нет
	Update(ctx context.Context, place *domain.Place) error

	// Delete удаляет место, errors.ErrPlaceNotFound если его нет
	Delete(ctx context.Context, placeID string) error
}
