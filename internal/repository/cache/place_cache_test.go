package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	apperrors "github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/repository/cache"
)

// memoryCache - CacheRepository в памяти
type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, errors.New("redis down")
	}
	return c.data[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok, nil
}

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) ListAll(ctx context.Context) ([]*domain.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) Count(ctx context.Context, filter domain.PlaceFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, placeID string) (*domain.Place, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	return m.Called(ctx, place).Error(0)
}

func (m *MockPlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	return m.Called(ctx, place).Error(0)
}

func (m *MockPlaceRepository) Delete(ctx context.Context, placeID string) error {
	return m.Called(ctx, placeID).Error(0)
}

func ptrFloat64(v float64) *float64 { return &v }

func samplePlaces() []*domain.Place {
	return []*domain.Place{
		{PlaceID: "a", Name: "A", Category: "Beach", Latitude: ptrFloat64(6.9), Longitude: ptrFloat64(79.8)},
		{PlaceID: "b", Name: "B", Category: "Temple"},
	}
}

func TestCachedPlaceRepository_ListAllUsesSnapshot(t *testing.T) {
	inner := &MockPlaceRepository{}
	inner.On("ListAll", mock.Anything).Return(samplePlaces(), nil).Once()
	mem := newMemoryCache()

	repo := cache.NewCachedPlaceRepository(inner, mem, time.Minute, zap.NewNop())

	first, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	second, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second, 2)
	require.NotNil(t, second[0].Latitude)
	assert.Equal(t, 6.9, *second[0].Latitude)
	assert.Nil(t, second[1].Latitude)
	inner.AssertNumberOfCalls(t, "ListAll", 1)
}

func TestCachedPlaceRepository_MutationsInvalidate(t *testing.T) {
	inner := &MockPlaceRepository{}
	inner.On("ListAll", mock.Anything).Return(samplePlaces(), nil)
	inner.On("Create", mock.Anything, mock.Anything).Return(nil)
	inner.On("Update", mock.Anything, mock.Anything).Return(nil)
	inner.On("Delete", mock.Anything, "a").Return(nil)
	inner.On("Delete", mock.Anything, "zzz").Return(apperrors.ErrPlaceNotFound)
	mem := newMemoryCache()

	repo := cache.NewCachedPlaceRepository(inner, mem, time.Minute, zap.NewNop())
	ctx := context.Background()

	mutations := []func() error{
		func() error { return repo.Create(ctx, &domain.Place{PlaceID: "c"}) },
		func() error { return repo.Update(ctx, &domain.Place{PlaceID: "a"}) },
		func() error { return repo.Delete(ctx, "a") },
	}
	for _, mutate := range mutations {
		_, err := repo.ListAll(ctx)
		require.NoError(t, err)
		cached, _ := mem.Exists(ctx, cache.CatalogSnapshotKey)
		require.True(t, cached)

		require.NoError(t, mutate())
		cached, _ = mem.Exists(ctx, cache.CatalogSnapshotKey)
		assert.False(t, cached)
	}

	// failed mutation keeps the snapshot
	_, _ = repo.ListAll(ctx)
	assert.ErrorIs(t, repo.Delete(ctx, "zzz"), apperrors.ErrPlaceNotFound)
	cached, _ := mem.Exists(ctx, cache.CatalogSnapshotKey)
	assert.True(t, cached)
}

func TestCachedPlaceRepository_CacheFailureFallsThrough(t *testing.T) {
	inner := &MockPlaceRepository{}
	inner.On("ListAll", mock.Anything).Return(samplePlaces(), nil)
	mem := newMemoryCache()
	mem.failGet = true

	repo := cache.NewCachedPlaceRepository(inner, mem, time.Minute, zap.NewNop())

	places, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, places, 2)
}

func TestItineraryStore(t *testing.T) {
	mem := newMemoryCache()
	store := cache.NewItineraryStore(mem, time.Hour)
	ctx := context.Background()

	it := &domain.Itinerary{
		ID:                 "5f1f6a57-7a43-4c36-9d5e-1b2a3c4d5e6f",
		Title:              "Weekend",
		TotalDays:          1,
		Days:               []domain.DayPlan{{DayNumber: 1, DayBudget: 800}},
		TotalEstimatedCost: 800,
	}
	require.NoError(t, store.Save(ctx, it))

	got, err := store.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekend", got.Title)
	assert.Equal(t, 800.0, got.TotalEstimatedCost)

	_, err = store.Get(ctx, "unknown")
	assert.ErrorIs(t, err, apperrors.ErrItineraryNotFound)

	mem.failGet = true
	_, err = store.Get(ctx, it.ID)
	assert.ErrorIs(t, err, apperrors.ErrCacheError)
}
