package testhelpers

import (
	"context"
	"time"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

func ptr(v float64) *float64 { return &v }

// SamplePlaces - небольшой каталог из трёх районов
func SamplePlaces() []*domain.Place {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return []*domain.Place{
		{PlaceID: "WP-COL-001", Name: "Gangaramaya Temple", District: "Colombo", Region: "Western", Category: "Temple",
			EstimatedTimeToVisit: ptr(1.5), Latitude: ptr(6.9167), Longitude: ptr(79.8562), CreatedAt: now, UpdatedAt: now},
		{PlaceID: "WP-COL-002", Name: "Galle Face Green", District: "Colombo", Region: "Western", Category: "Beach",
			Latitude: ptr(6.9271), Longitude: ptr(79.8440), CreatedAt: now, UpdatedAt: now},
		{PlaceID: "CP-KAN-001", Name: "Temple of the Tooth", District: "Kandy", Region: "Central", Category: "Temple",
			EstimatedTimeToVisit: ptr(2), Latitude: ptr(7.2936), Longitude: ptr(80.6413), CreatedAt: now, UpdatedAt: now},
		{PlaceID: "SP-GAL-001", Name: "Galle Fort", District: "Galle", Region: "Southern", Category: "Historical",
			Description: "Dutch fort", CreatedAt: now, UpdatedAt: now},
	}
}

// SeedPlaces сохраняет места через репозиторий
func SeedPlaces(ctx context.Context, repo repository.PlaceRepository, places []*domain.Place) error {
	for _, p := range places {
		if err := repo.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
