package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/usecase"
)

func TestSelectDayTemplates_ReturnsOneEntryPerDay(t *testing.T) {
	for n := 1; n <= 12; n++ {
		templates := usecase.SelectDayTemplates(n)
		require.Len(t, templates, n, "days=%d", n)
		for i, tpl := range templates {
			assert.Equal(t, i+1, tpl.DayNumber)
			assert.NotEmpty(t, tpl.Draws)
			assert.Positive(t, tpl.Cap)
		}
	}
}

func TestSelectDayTemplates_NonPositive(t *testing.T) {
	assert.Empty(t, usecase.SelectDayTemplates(0))
	assert.Empty(t, usecase.SelectDayTemplates(-3))
}

func TestSelectDayTemplates_SingleDay(t *testing.T) {
	templates := usecase.SelectDayTemplates(1)

	require.Len(t, templates, 1)
	assert.Equal(t, 4, templates[0].Cap)
	assert.False(t, templates[0].ReturnDay)
	assert.Equal(t, []usecase.ClusterDraw{
		{Cluster: domain.ClusterAnchorNear, Max: 4},
		{Cluster: domain.ClusterWest, Max: 4},
	}, templates[0].Draws)
}

func TestSelectDayTemplates_TwoDays(t *testing.T) {
	templates := usecase.SelectDayTemplates(2)

	require.Len(t, templates, 2)
	assert.Equal(t, domain.ClusterAnchorNear, templates[0].Draws[0].Cluster)
	assert.Equal(t, 3, templates[0].Cap)
	assert.Equal(t, domain.ClusterCentral, templates[1].Draws[0].Cluster)
	assert.Equal(t, 3, templates[1].Cap)
	assert.True(t, templates[1].ReturnDay)
}

func TestSelectDayTemplates_ThreeDays(t *testing.T) {
	templates := usecase.SelectDayTemplates(3)

	require.Len(t, templates, 3)
	assert.Equal(t, domain.ClusterCentral, templates[1].Draws[0].Cluster)
	assert.Equal(t, 4, templates[1].Cap)

	last := templates[2]
	assert.True(t, last.ReturnDay)
	assert.Equal(t, 3, last.Cap)
	assert.Equal(t, []usecase.ClusterDraw{
		{Cluster: domain.ClusterWest, Max: 1},
		{Cluster: domain.ClusterAnchorNear, Max: 3},
	}, last.Draws)
}

func TestSelectDayTemplates_RotationWraps(t *testing.T) {
	templates := usecase.SelectDayTemplates(8)

	expected := []domain.Cluster{
		domain.ClusterCentral,
		domain.ClusterSouth,
		domain.ClusterHighland,
		domain.ClusterAncientCities,
		domain.ClusterWest,
		domain.ClusterCentral,
	}
	for i, c := range expected {
		assert.Equal(t, c, templates[i+1].Draws[0].Cluster, "day %d", i+2)
	}

	// last regional day is Central, so the way back passes through West
	assert.Equal(t, domain.ClusterWest, templates[7].Draws[0].Cluster)
	assert.True(t, templates[7].ReturnDay)
}

func TestSelectDayTemplates_ReturnAfterHighland(t *testing.T) {
	templates := usecase.SelectDayTemplates(5)

	assert.Equal(t, domain.ClusterHighland, templates[3].Draws[0].Cluster)
	assert.Equal(t, domain.ClusterCentral, templates[4].Draws[0].Cluster)
}

func TestResolveTemplate_UsedSetPreventsRepeats(t *testing.T) {
	clusters := domain.RegionClusters{
		domain.ClusterAnchorNear: {
			newPlace("a1", "A1", "Colombo", "Park", 6.92, 79.86),
			newPlace("a2", "A2", "Colombo", "Park", 6.93, 79.86),
		},
		domain.ClusterWest: {
			newPlace("w1", "W1", "Negombo", "Beach", 7.21, 79.84),
			newPlace("w2", "W2", "Negombo", "Beach", 7.22, 79.84),
			newPlace("w3", "W3", "Negombo", "Beach", 7.23, 79.84),
		},
	}
	used := map[string]struct{}{"a1": {}}

	tpl := usecase.DayTemplate{
		DayNumber: 1,
		Draws: []usecase.ClusterDraw{
			{Cluster: domain.ClusterAnchorNear, Max: 4},
			{Cluster: domain.ClusterWest, Max: 4},
		},
		Cap: 3,
	}

	selected := usecase.ResolveTemplate(tpl, clusters, used)

	require.Len(t, selected, 3)
	assert.Equal(t, "a2", selected[0].PlaceID)
	assert.Equal(t, "w1", selected[1].PlaceID)
	assert.Equal(t, "w2", selected[2].PlaceID)
	assert.Len(t, used, 4)

	again := usecase.ResolveTemplate(tpl, clusters, used)
	require.Len(t, again, 1)
	assert.Equal(t, "w3", again[0].PlaceID)
}

func TestResolveTemplate_EmptyClusters(t *testing.T) {
	tpl := usecase.SelectDayTemplates(1)[0]
	selected := usecase.ResolveTemplate(tpl, domain.RegionClusters{}, map[string]struct{}{})
	assert.Empty(t, selected)
}
