package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/usecase"
)

func TestWriteDatasetCSV(t *testing.T) {
	places := []*domain.Place{
		newPlace("c1", "Gangaramaya", "Colombo", "Temple", 6.9167, 79.8562),
		{PlaceID: "x1", Name: "No Coords", Category: "Museum", Description: "two words"},
	}
	places[0].EstimatedTimeToVisit = ptrFloat64(1.5)

	var buf bytes.Buffer
	require.NoError(t, usecase.WriteDatasetCSV(&buf, places, colombo))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "place_id", rows[0][0])
	assert.Equal(t, "location_zone", rows[0][11])

	assert.Equal(t, []string{"c1", "Gangaramaya", "Colombo", "", "", "Temple", "1.5", "6.9167", "79.8562", "11", "0", "Anchor-Near"}, rows[1])
	assert.Equal(t, "", rows[2][7])
	assert.Equal(t, "2", rows[2][10])
	assert.Equal(t, "", rows[2][11])
}

func TestDatasetRefreshUseCase_Refresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ml", "places.csv")

	placeRepo := &MockPlaceRepository{}
	placeRepo.On("ListAll", mock.Anything).Return(threeClusterCatalog(), nil)
	rec := &MockRecommenderRepository{}
	rec.On("ReloadData", mock.Anything).Return(nil).Once()
	rec.On("Retrain", mock.Anything).Return(nil).Once()

	uc := usecase.NewDatasetRefreshUseCase(placeRepo, rec, colombo, path, zap.NewNop())

	require.NoError(t, uc.Refresh(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 7)
	rec.AssertExpectations(t)
}

func TestDatasetRefreshUseCase_ReloadFailureSkipsRetrain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.csv")

	placeRepo := &MockPlaceRepository{}
	placeRepo.On("ListAll", mock.Anything).Return(threeClusterCatalog(), nil)
	rec := &MockRecommenderRepository{}
	rec.On("ReloadData", mock.Anything).Return(errors.New("connection refused"))

	uc := usecase.NewDatasetRefreshUseCase(placeRepo, rec, colombo, path, zap.NewNop())

	err := uc.Refresh(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reload")
	rec.AssertNotCalled(t, "Retrain", mock.Anything)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestDatasetRefreshUseCase_CatalogFailure(t *testing.T) {
	placeRepo := &MockPlaceRepository{}
	placeRepo.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))
	rec := &MockRecommenderRepository{}

	uc := usecase.NewDatasetRefreshUseCase(placeRepo, rec, colombo, filepath.Join(t.TempDir(), "x.csv"), zap.NewNop())

	assert.Error(t, uc.Refresh(context.Background()))
	rec.AssertNotCalled(t, "ReloadData", mock.Anything)
}
