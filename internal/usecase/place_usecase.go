package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/pkg/utils"
	"github.com/itinerary-service/internal/usecase/dto"
)

const (
	publishTimeout       = 5 * time.Second
	defaultPlacePageSize = 100
	maxPlacePageSize     = 500
)

// PlaceUseCase - каталог мест и уведомление об изменениях
type PlaceUseCase struct {
	placeRepo  repository.PlaceRepository
	streamRepo repository.StreamRepository
	anchor     domain.Anchor
	logger     *zap.Logger
}

// NewPlaceUseCase - создание нового PlaceUseCase (streamRepo может быть nil)
func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	streamRepo repository.StreamRepository,
	anchor domain.Anchor,
	logger *zap.Logger,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo:  placeRepo,
		streamRepo: streamRepo,
		anchor:     anchor,
		logger:     logger,
	}
}

// List - страница каталога с фильтром
func (uc *PlaceUseCase) List(ctx context.Context, filter domain.PlaceFilter) (*dto.PlaceListResponse, error) {
	if filter.Limit <= 0 || filter.Limit > maxPlacePageSize {
		filter.Limit = defaultPlacePageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	places, err := uc.placeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list places", zap.Error(err))
		return nil, err
	}
	total, err := uc.placeRepo.Count(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to count places", zap.Error(err))
		return nil, err
	}
	return &dto.PlaceListResponse{Places: places, Total: total}, nil
}

// Get - место по идентификатору
func (uc *PlaceUseCase) Get(ctx context.Context, placeID string) (*domain.Place, error) {
	return uc.placeRepo.GetByID(ctx, placeID)
}

// Create - добавление места; идентификатор генерируется если не задан
func (uc *PlaceUseCase) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	if err := checkPlaceCoordinates(place); err != nil {
		return nil, err
	}
	if place.PlaceID == "" {
		place.PlaceID = uuid.New().String()
	}
	now := time.Now().UTC()
	place.CreatedAt = now
	place.UpdatedAt = now

	if err := uc.placeRepo.Create(ctx, place); err != nil {
		uc.logger.Error("Failed to create place", zap.String("place_id", place.PlaceID), zap.Error(err))
		return nil, err
	}

	uc.notifyChanged(place.PlaceID, domain.CatalogChangeCreated)
	return place, nil
}

// Update - обновление места
func (uc *PlaceUseCase) Update(ctx context.Context, placeID string, place *domain.Place) (*domain.Place, error) {
	if err := checkPlaceCoordinates(place); err != nil {
		return nil, err
	}
	existing, err := uc.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	place.PlaceID = placeID
	place.CreatedAt = existing.CreatedAt
	place.UpdatedAt = time.Now().UTC()

	if err := uc.placeRepo.Update(ctx, place); err != nil {
		uc.logger.Error("Failed to update place", zap.String("place_id", placeID), zap.Error(err))
		return nil, err
	}

	uc.notifyChanged(placeID, domain.CatalogChangeUpdated)
	return place, nil
}

// Delete - удаление места
func (uc *PlaceUseCase) Delete(ctx context.Context, placeID string) error {
	if err := uc.placeRepo.Delete(ctx, placeID); err != nil {
		return err
	}
	uc.notifyChanged(placeID, domain.CatalogChangeDeleted)
	return nil
}

// Categories - уникальные категории каталога по алфавиту
func (uc *PlaceUseCase) Categories(ctx context.Context) (*dto.ReferenceListResponse, error) {
	return uc.reference(ctx, func(p *domain.Place) string { return p.Category })
}

// Districts - уникальные районы каталога по алфавиту
func (uc *PlaceUseCase) Districts(ctx context.Context) (*dto.ReferenceListResponse, error) {
	return uc.reference(ctx, func(p *domain.Place) string { return p.District })
}

func (uc *PlaceUseCase) reference(ctx context.Context, field func(*domain.Place) string) (*dto.ReferenceListResponse, error) {
	places, err := uc.placeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	items := make([]string, 0)
	for _, p := range places {
		v := strings.TrimSpace(field(p))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		items = append(items, v)
	}
	sort.Strings(items)

	return &dto.ReferenceListResponse{Items: items, Total: len(items)}, nil
}

// Clusters - кластеры с районами из таблицы и количеством мест каталога
func (uc *PlaceUseCase) Clusters(ctx context.Context) (*dto.ClustersResponse, error) {
	places, err := uc.placeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	classified := ClassifyPlaces(places, uc.anchor)
	districts := KnownDistricts()

	out := make([]dto.ClusterSummary, 0, len(domain.AllClusters))
	for _, c := range domain.AllClusters {
		ds := districts[c]
		if ds == nil {
			ds = []string{}
		}
		out = append(out, dto.ClusterSummary{
			Cluster:    c,
			Districts:  ds,
			PlaceCount: len(classified[c]),
		})
	}
	return &dto.ClustersResponse{Clusters: out}, nil
}

// notifyChanged публикует событие в фоне; ошибка публикации не влияет на операцию
func (uc *PlaceUseCase) notifyChanged(placeID, changeType string) {
	if uc.streamRepo == nil {
		return
	}
	event := domain.NewCatalogChangedEvent(placeID, changeType)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamCatalogChanged, event); err != nil {
			uc.logger.Warn("Failed to publish catalog change",
				zap.String("place_id", placeID),
				zap.String("change_type", changeType),
				zap.Error(err))
			return
		}
		uc.logger.Debug("Catalog change published",
			zap.String("place_id", placeID),
			zap.String("event_id", event.EventID.String()))
	}()
}

func checkPlaceCoordinates(place *domain.Place) error {
	if (place.Latitude == nil) != (place.Longitude == nil) {
		return errors.ErrInvalidCoordinates.WithMessage("latitude and longitude must be provided together")
	}
	if place.HasCoordinates() && !utils.ValidateCoordinates(*place.Latitude, *place.Longitude) {
		return errors.ErrInvalidCoordinates
	}
	return nil
}
