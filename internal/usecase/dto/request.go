package dto

import (
	"strings"
	"time"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/pkg/errors"
)

// GenerateItineraryRequest - запрос на генерацию маршрута
type GenerateItineraryRequest struct {
	Title               string   `json:"title" validate:"omitempty,max=200"`
	StartDate           string   `json:"start_date" validate:"required,date"`
	EndDate             string   `json:"end_date" validate:"omitempty,date"`
	TotalDays           int      `json:"total_days" validate:"required,min=1,max=30"`
	AdultsCount         int      `json:"adults_count" validate:"min=0,max=100"`
	ChildrenCount       int      `json:"children_count" validate:"min=0,max=100"`
	StudentsCount       int      `json:"students_count" validate:"min=0,max=100"`
	ForeignersCount     int      `json:"foreigners_count" validate:"min=0,max=100"`
	PreferredCategories []string `json:"preferred_categories,omitempty" validate:"omitempty,max=20,dive,min=1,max=100"`
	BudgetRange         string   `json:"budget_range" validate:"omitempty,oneof=low medium high luxury"`
	StartingLocation    string   `json:"starting_location" validate:"omitempty,max=200"`
	TransportPreference string   `json:"transport_preference" validate:"omitempty,oneof=bus train car private taxi walk"`
	IncludeWeather      *bool    `json:"include_weather,omitempty"`
	MaxTravelDistanceKm *float64 `json:"max_travel_distance_km,omitempty" validate:"omitempty,gt=0,max=2000"`
}

// ToDomain - проверки между полями и преобразование в доменный запрос
func (r *GenerateItineraryRequest) ToDomain() (*domain.GenerationRequest, error) {
	start, err := time.Parse(domain.DateLayout, r.StartDate)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"start_date": "must be YYYY-MM-DD",
		})
	}

	var end time.Time
	if r.EndDate != "" {
		end, err = time.Parse(domain.DateLayout, r.EndDate)
		if err != nil || end.Before(start) {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"end_date": "must be YYYY-MM-DD and not before start_date",
			})
		}
	}

	req := &domain.GenerationRequest{
		Title:               strings.TrimSpace(r.Title),
		StartDate:           start,
		EndDate:             end,
		TotalDays:           r.TotalDays,
		AdultsCount:         r.AdultsCount,
		ChildrenCount:       r.ChildrenCount,
		StudentsCount:       r.StudentsCount,
		ForeignersCount:     r.ForeignersCount,
		PreferredCategories: r.PreferredCategories,
		BudgetRange:         r.BudgetRange,
		StartingLocation:    strings.TrimSpace(r.StartingLocation),
		TransportPreference: r.TransportPreference,
		IncludeWeather:      r.IncludeWeather,
		MaxTravelDistanceKm: r.MaxTravelDistanceKm,
	}

	if req.TotalTravelers() == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"travelers": "at least one traveler is required",
		})
	}

	return req, nil
}

// PlaceRequest - создание или обновление места каталога
type PlaceRequest struct {
	PlaceID              string   `json:"place_id" validate:"omitempty,max=64"`
	Name                 string   `json:"name" validate:"required,min=1,max=200"`
	District             string   `json:"district" validate:"omitempty,max=100"`
	Region               string   `json:"region" validate:"omitempty,max=100"`
	Category             string   `json:"category" validate:"required,max=100"`
	Description          string   `json:"description" validate:"omitempty,max=5000"`
	EstimatedTimeToVisit *float64 `json:"estimated_time_to_visit,omitempty" validate:"omitempty,min=0,max=10"`
	Latitude             *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude            *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// ToDomain - преобразование в доменное место
func (r *PlaceRequest) ToDomain() *domain.Place {
	return &domain.Place{
		PlaceID:              strings.TrimSpace(r.PlaceID),
		Name:                 strings.TrimSpace(r.Name),
		District:             strings.TrimSpace(r.District),
		Region:               strings.TrimSpace(r.Region),
		Category:             strings.TrimSpace(r.Category),
		Description:          r.Description,
		EstimatedTimeToVisit: r.EstimatedTimeToVisit,
		Latitude:             r.Latitude,
		Longitude:            r.Longitude,
	}
}
