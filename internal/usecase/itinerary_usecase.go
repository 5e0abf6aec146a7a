package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/pkg/utils"
)

const defaultItineraryTitle = "Travel Itinerary"

// ItineraryUseCase - генерация многодневных маршрутов
type ItineraryUseCase struct {
	placeRepo   repository.PlaceRepository
	recommender repository.RecommenderRepository
	store       repository.ItineraryStore
	anchor      domain.Anchor
	delegated   *delegatedStrategy
	ruleBased   *ruleBasedStrategy
	logger      *zap.Logger
}

// NewItineraryUseCase - создание нового ItineraryUseCase.
// recommender и store могут быть nil: тогда используется только локальное планирование и маршруты не сохраняются.
func NewItineraryUseCase(
	placeRepo repository.PlaceRepository,
	recommender repository.RecommenderRepository,
	store repository.ItineraryStore,
	anchor domain.Anchor,
	builder *DayRouteBuilder,
	logger *zap.Logger,
) *ItineraryUseCase {
	dc := dayContext{anchor: anchor, builder: builder}
	uc := &ItineraryUseCase{
		placeRepo:   placeRepo,
		recommender: recommender,
		store:       store,
		anchor:      anchor,
		ruleBased:   &ruleBasedStrategy{dayContext: dc},
		logger:      logger,
	}
	if recommender != nil {
		uc.delegated = &delegatedStrategy{dayContext: dc, recommender: recommender}
	}
	return uc
}

// Generate строит маршрут по запросу. Недоступность ML-сервиса не является ошибкой.
func (uc *ItineraryUseCase) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.Itinerary, error) {
	if req == nil || req.TotalDays < 1 {
		return nil, errors.ErrInvalidRequest.WithMessage("total_days must be at least 1")
	}

	places, err := uc.placeRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load catalog snapshot", zap.Error(err))
		return nil, errors.ErrGenerationFailed.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}

	candidates := uc.filterCandidates(places, req)
	uc.logger.Debug("Candidates selected",
		zap.Int("catalog_size", len(places)),
		zap.Int("candidates", len(candidates)))

	result, strategy := uc.plan(ctx, req, candidates)

	itinerary := uc.assemble(req, result, strategy)

	if uc.store != nil {
		if err := uc.store.Save(ctx, itinerary); err != nil {
			uc.logger.Warn("Failed to store itinerary", zap.String("id", itinerary.ID), zap.Error(err))
		}
	}

	uc.logger.Info("Itinerary generated",
		zap.String("id", itinerary.ID),
		zap.String("strategy", itinerary.Strategy),
		zap.Int("days", itinerary.TotalDays),
		zap.Int("places", itinerary.PlaceCount()),
		zap.Float64("total_cost", itinerary.TotalEstimatedCost))

	return itinerary, nil
}

// Get возвращает ранее сгенерированный маршрут
func (uc *ItineraryUseCase) Get(ctx context.Context, id string) (*domain.Itinerary, error) {
	if uc.store == nil {
		return nil, errors.ErrItineraryNotFound
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrItineraryNotFound
	}
	return uc.store.Get(ctx, id)
}

func (uc *ItineraryUseCase) plan(ctx context.Context, req *domain.GenerationRequest, candidates []*domain.Place) (*PlanResult, PlanningStrategy) {
	if uc.delegated != nil {
		health := uc.recommender.Health(ctx)
		if health.Available {
			result, err := uc.delegated.Plan(ctx, req, candidates)
			if err == nil {
				return result, uc.delegated
			}
			uc.logger.Warn("Recommender plan rejected, falling back to rule-based planning", zap.Error(err))
		} else {
			uc.logger.Warn("Recommender unavailable, using rule-based planning", zap.String("reason", health.Reason))
		}
	}

	// Локальная стратегия не возвращает ошибок на корректном входе
	result, _ := uc.ruleBased.Plan(ctx, req, candidates)
	return result, uc.ruleBased
}

// filterCandidates - категории, наличие координат, максимальное удаление от якоря
func (uc *ItineraryUseCase) filterCandidates(places []*domain.Place, req *domain.GenerationRequest) []*domain.Place {
	prefs := make([]string, 0, len(req.PreferredCategories))
	for _, c := range req.PreferredCategories {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			prefs = append(prefs, c)
		}
	}

	out := make([]*domain.Place, 0, len(places))
	for _, p := range places {
		if p == nil || !p.HasCoordinates() {
			continue
		}
		if len(prefs) > 0 && !matchesCategory(p.Category, prefs) {
			continue
		}
		if req.MaxTravelDistanceKm != nil {
			d := utils.HaversineDistance(uc.anchor.Point.Lat, uc.anchor.Point.Lon, *p.Latitude, *p.Longitude)
			if d > *req.MaxTravelDistanceKm {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func matchesCategory(category string, prefs []string) bool {
	c := strings.ToLower(category)
	for _, pref := range prefs {
		if strings.Contains(c, pref) {
			return true
		}
	}
	return false
}

func (uc *ItineraryUseCase) assemble(req *domain.GenerationRequest, result *PlanResult, strategy PlanningStrategy) *domain.Itinerary {
	title := strings.TrimSpace(req.Title)
	if result.Title != "" {
		title = result.Title
	}
	if title == "" {
		title = defaultItineraryTitle
	}

	status := domain.StatusGenerated
	if strategy.Name() == domain.StrategyDelegated {
		status = domain.StatusGeneratedByML
	}

	var total float64
	for _, d := range result.Days {
		total += d.DayBudget
	}

	it := &domain.Itinerary{
		ID:                 uuid.New().String(),
		Title:              title,
		TotalDays:          req.TotalDays,
		TotalPeople:        req.TotalTravelers(),
		Status:             status,
		Strategy:           strategy.Name(),
		CreatedAt:          time.Now().UTC(),
		Days:               result.Days,
		TotalEstimatedCost: utils.Round2(total),
	}
	if !req.StartDate.IsZero() {
		it.StartDate = req.StartDate.Format(domain.DateLayout)
		end := req.EndDate
		if end.IsZero() {
			end = req.StartDate.AddDate(0, 0, req.TotalDays-1)
		}
		it.EndDate = end.Format(domain.DateLayout)
	}
	return it
}
