package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

// PlanningStrategy - способ распределить кандидатов по дням
type PlanningStrategy interface {
	Name() string
	Plan(ctx context.Context, req *domain.GenerationRequest, candidates []*domain.Place) (*PlanResult, error)
}

// PlanResult - дни, построенные стратегией, и необязательный заголовок
type PlanResult struct {
	Title string
	Days  []domain.DayPlan
}

// dayContext - общие параметры построения дней одного запроса
type dayContext struct {
	anchor  domain.Anchor
	builder *DayRouteBuilder
}

func (dc dayContext) buildDay(req *domain.GenerationRequest, dayNumber int, places []*domain.Place) domain.DayPlan {
	return dc.builder.BuildDay(DayRouteInput{
		Anchor:         dc.anchor,
		StartLocation:  req.StartingLocation,
		DayNumber:      dayNumber,
		Date:           dayDate(req, dayNumber),
		Places:         places,
		TransportMode:  req.TransportPreference,
		PartySize:      req.PartySize(),
		IncludeWeather: req.WeatherEnabled(),
	})
}

func dayDate(req *domain.GenerationRequest, dayNumber int) string {
	if req.StartDate.IsZero() {
		return ""
	}
	return req.StartDate.AddDate(0, 0, dayNumber-1).Format(domain.DateLayout)
}

// ruleBasedStrategy - кластеры, шаблоны дней и жадный выбор без повторов
type ruleBasedStrategy struct {
	dayContext
}

func (s *ruleBasedStrategy) Name() string { return domain.StrategyRuleBased }

func (s *ruleBasedStrategy) Plan(_ context.Context, req *domain.GenerationRequest, candidates []*domain.Place) (*PlanResult, error) {
	clusters := ClassifyPlaces(candidates, s.anchor)
	templates := SelectDayTemplates(req.TotalDays)
	used := make(map[string]struct{}, clusters.Total())

	days := make([]domain.DayPlan, 0, len(templates))
	for _, tpl := range templates {
		selected := ResolveTemplate(tpl, clusters, used)
		day := s.buildDay(req, tpl.DayNumber, selected)
		// Не уместившиеся места возвращаются в пул для следующих дней
		for _, id := range day.DroppedPlaceIDs {
			delete(used, id)
		}
		days = append(days, day)
	}

	return &PlanResult{Days: days}, nil
}

// delegatedStrategy - состав и порядок дней от ML-сервиса, расчёты локально
type delegatedStrategy struct {
	dayContext
	recommender repository.RecommenderRepository
}

func (s *delegatedStrategy) Name() string { return domain.StrategyDelegated }

func (s *delegatedStrategy) Plan(ctx context.Context, req *domain.GenerationRequest, candidates []*domain.Place) (*PlanResult, error) {
	plan, err := s.recommender.Plan(ctx, domain.RecommenderPlanRequest{
		TotalDays:           req.TotalDays,
		AdultsCount:         req.AdultsCount,
		ChildrenCount:       req.ChildrenCount,
		StudentsCount:       req.StudentsCount,
		ForeignersCount:     req.ForeignersCount,
		BudgetRange:         req.BudgetRange,
		PreferredCategories: req.PreferredCategories,
		TransportPreference: req.TransportPreference,
		MaxTravelDistanceKm: req.MaxTravelDistanceKm,
	})
	if err != nil {
		return nil, err
	}

	byDay, err := placesByDay(plan, req.TotalDays, candidates)
	if err != nil {
		return nil, err
	}

	days := make([]domain.DayPlan, 0, req.TotalDays)
	for day := 1; day <= req.TotalDays; day++ {
		days = append(days, s.buildDay(req, day, byDay[day]))
	}

	title := strings.TrimSpace(plan.Title)
	if title != "" {
		title = "ML-Powered " + title
	}
	return &PlanResult{Title: title, Days: days}, nil
}

// placesByDay проверяет ответ сервиса и группирует места по номеру дня.
// Места берутся из каталога: сервис может выбирать только среди кандидатов и без повторов.
func placesByDay(plan *domain.RecommenderPlan, totalDays int, candidates []*domain.Place) (map[int][]*domain.Place, error) {
	if plan == nil {
		return nil, fmt.Errorf("empty recommender plan")
	}

	byID := make(map[string]*domain.Place, len(candidates))
	for _, p := range candidates {
		byID[p.PlaceID] = p
	}

	seen := make(map[string]struct{})
	out := make(map[int][]*domain.Place, totalDays)
	for _, d := range plan.Days {
		if d.Day < 1 || d.Day > totalDays {
			return nil, fmt.Errorf("recommender day %d outside 1..%d", d.Day, totalDays)
		}
		for i, rp := range d.Places {
			if rp.PlaceID == "" || rp.Name == "" || rp.Latitude == nil || rp.Longitude == nil {
				return nil, fmt.Errorf("recommender place %d of day %d is incomplete", i, d.Day)
			}
			place, ok := byID[rp.PlaceID]
			if !ok {
				return nil, fmt.Errorf("recommender place %q is not a candidate", rp.PlaceID)
			}
			if _, dup := seen[rp.PlaceID]; dup {
				return nil, fmt.Errorf("recommender place %q repeated", rp.PlaceID)
			}
			seen[rp.PlaceID] = struct{}{}
			out[d.Day] = append(out[d.Day], place)
		}
	}
	return out, nil
}
