package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer("https://trips.example.com/", zap.NewNop())

	it := &domain.Itinerary{
		ID:                 "9c1d2e3f-4a5b-4c6d-8e7f-0a1b2c3d4e5f",
		Title:              "Colombo & Kandy",
		StartDate:          "2025-03-01",
		EndDate:            "2025-03-02",
		TotalDays:          2,
		TotalPeople:        3,
		Status:             domain.StatusGenerated,
		TotalEstimatedCost: 2450,
		Days: []domain.DayPlan{
			{
				DayNumber: 1, Date: "2025-03-01", StartTime: "08:00", EndTime: "18:00",
				StartLocation: "Colombo", EndLocation: "Colombo",
				Places: []domain.VisitLeg{
					{VisitOrder: 1, PlaceName: "Gangaramaya Temple", Category: "Temple", ArrivalTime: "08:03", DepartureTime: "09:33",
						DistanceFromPreviousKm: 1.2, TransportMode: "car", TransportCost: 18, EntryCost: 500},
					{VisitOrder: 2, PlaceName: "A very long place name that certainly does not fit into the column", Category: "Park",
						ArrivalTime: "09:40", DepartureTime: "11:40", DistanceFromPreviousKm: 2, TransportMode: "car", TransportCost: 30, EntryCost: 500},
				},
				TotalDistanceKm: 5.1, TotalTravelTimeHours: 0.09, DayBudget: 1100,
			},
			{DayNumber: 2, Date: "2025-03-02", StartTime: "08:00", EndTime: "18:00", StartLocation: "Colombo", EndLocation: "Colombo"},
		},
	}

	data, err := r.Render(it)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Greater(t, len(data), 1000)
}

func TestRenderer_ItineraryURL(t *testing.T) {
	r := NewRenderer("http://localhost:8080/", zap.NewNop())
	assert.Equal(t, "http://localhost:8080/api/v1/itinerary/abc", r.ItineraryURL("abc"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefgh", 5))
}
