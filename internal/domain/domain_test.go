package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinerary-service/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestPlace_VisitDurationHours(t *testing.T) {
	assert.Equal(t, domain.DefaultVisitDurationHours, (&domain.Place{}).VisitDurationHours())
	assert.Equal(t, domain.DefaultVisitDurationHours, (&domain.Place{EstimatedTimeToVisit: ptr(-1.0)}).VisitDurationHours())
	assert.Equal(t, 0.5, (&domain.Place{EstimatedTimeToVisit: ptr(0.5)}).VisitDurationHours())
}

func TestPlace_HasCoordinates(t *testing.T) {
	assert.False(t, (&domain.Place{Latitude: ptr(6.9)}).HasCoordinates())

	p := &domain.Place{Latitude: ptr(6.9), Longitude: ptr(79.8)}
	require.True(t, p.HasCoordinates())
	assert.Equal(t, domain.Point{Lat: 6.9, Lon: 79.8}, p.Point())
}

func TestGenerationRequest_Travelers(t *testing.T) {
	req := &domain.GenerationRequest{AdultsCount: 2, ChildrenCount: 1, StudentsCount: 1, ForeignersCount: 3}
	assert.Equal(t, 7, req.TotalTravelers())
	assert.Equal(t, 7, req.PartySize())

	assert.Equal(t, 1, (&domain.GenerationRequest{}).PartySize())
}

func TestGenerationRequest_WeatherEnabled(t *testing.T) {
	assert.True(t, (&domain.GenerationRequest{}).WeatherEnabled())
	assert.True(t, (&domain.GenerationRequest{IncludeWeather: ptr(true)}).WeatherEnabled())
	assert.False(t, (&domain.GenerationRequest{IncludeWeather: ptr(false)}).WeatherEnabled())
}

func TestItinerary_PlaceCount(t *testing.T) {
	it := &domain.Itinerary{Days: []domain.DayPlan{
		{Places: make([]domain.VisitLeg, 3)},
		{},
		{Places: make([]domain.VisitLeg, 2)},
	}}
	assert.Equal(t, 5, it.PlaceCount())
}

func TestRegionClusters_Total(t *testing.T) {
	rc := domain.RegionClusters{
		domain.ClusterWest:    {{PlaceID: "a"}, {PlaceID: "b"}},
		domain.ClusterCentral: {{PlaceID: "c"}},
	}
	assert.Equal(t, 3, rc.Total())
	assert.Len(t, domain.AllClusters, 6)
}

func TestCatalogChangedEvent_JSON(t *testing.T) {
	event := domain.NewCatalogChangedEvent("WP-COL-001", domain.CatalogChangeDeleted)
	assert.NotEqual(t, event.EventID.String(), "00000000-0000-0000-0000-000000000000")

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "WP-COL-001", raw["place_id"])
	assert.Equal(t, "deleted", raw["change_type"])
	assert.Contains(t, raw, "event_id")
	assert.Contains(t, raw, "occurred_at")
}
