package testhelpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/pkg/errors"
)

// RunPlaceRepositoryContract проверяет поведение, общее для всех реализаций каталога.
// Репозиторий должен быть пустым.
func RunPlaceRepositoryContract(t *testing.T, repo repository.PlaceRepository) {
	ctx := context.Background()
	places := SamplePlaces()
	require.NoError(t, SeedPlaces(ctx, repo, places))

	t.Run("ListAll ordered by place_id", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, len(places))

		ids := make([]string, 0, len(all))
		for _, p := range all {
			ids = append(ids, p.PlaceID)
		}
		assert.Equal(t, []string{"CP-KAN-001", "SP-GAL-001", "WP-COL-001", "WP-COL-002"}, ids)
	})

	t.Run("GetByID keeps optional fields", func(t *testing.T) {
		p, err := repo.GetByID(ctx, "WP-COL-001")
		require.NoError(t, err)
		assert.Equal(t, "Gangaramaya Temple", p.Name)
		require.NotNil(t, p.EstimatedTimeToVisit)
		assert.Equal(t, 1.5, *p.EstimatedTimeToVisit)
		require.True(t, p.HasCoordinates())
		assert.InDelta(t, 6.9167, *p.Latitude, 1e-9)

		noCoords, err := repo.GetByID(ctx, "SP-GAL-001")
		require.NoError(t, err)
		assert.False(t, noCoords.HasCoordinates())
		assert.Nil(t, noCoords.EstimatedTimeToVisit)
		assert.Equal(t, "Dutch fort", noCoords.Description)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, errors.ErrPlaceNotFound)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		err := repo.Create(ctx, places[0])
		assert.ErrorIs(t, err, errors.ErrPlaceAlreadyExists)
	})

	t.Run("List filters", func(t *testing.T) {
		temples, err := repo.List(ctx, domain.PlaceFilter{Categories: []string{"TEMPLE"}, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, temples, 2)

		colombo, err := repo.List(ctx, domain.PlaceFilter{District: "colombo", Limit: 10})
		require.NoError(t, err)
		assert.Len(t, colombo, 2)

		both, err := repo.List(ctx, domain.PlaceFilter{Categories: []string{"temple", "beach"}, District: "Colombo", Limit: 10})
		require.NoError(t, err)
		assert.Len(t, both, 2)

		page, err := repo.List(ctx, domain.PlaceFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "SP-GAL-001", page[0].PlaceID)
	})

	t.Run("Count ignores paging", func(t *testing.T) {
		total, err := repo.Count(ctx, domain.PlaceFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, len(places), total)

		temples, err := repo.Count(ctx, domain.PlaceFilter{Categories: []string{"Temple"}, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, temples)

		colombo, err := repo.Count(ctx, domain.PlaceFilter{District: "COLOMBO"})
		require.NoError(t, err)
		assert.Equal(t, 2, colombo)
	})

	t.Run("Update", func(t *testing.T) {
		updated := *places[1]
		updated.Name = "Galle Face"
		updated.EstimatedTimeToVisit = ptr(1)
		require.NoError(t, repo.Update(ctx, &updated))

		got, err := repo.GetByID(ctx, updated.PlaceID)
		require.NoError(t, err)
		assert.Equal(t, "Galle Face", got.Name)
		require.NotNil(t, got.EstimatedTimeToVisit)
		assert.Equal(t, 1.0, *got.EstimatedTimeToVisit)

		missing := updated
		missing.PlaceID = "missing"
		assert.ErrorIs(t, repo.Update(ctx, &missing), errors.ErrPlaceNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "CP-KAN-001"))
		assert.ErrorIs(t, repo.Delete(ctx, "CP-KAN-001"), errors.ErrPlaceNotFound)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, len(places)-1)
	})
}
