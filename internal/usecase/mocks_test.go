package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/itinerary-service/internal/domain"
)

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

// MockRecommenderRepository is a mock of RecommenderRepository
type MockRecommenderRepository struct {
	mock.Mock
}

func (m *MockRecommenderRepository) Health(ctx context.Context) domain.RecommenderHealth {
	return m.Called(ctx).Get(0).(domain.RecommenderHealth)
}

func (m *MockRecommenderRepository) Plan(ctx context.Context, req domain.RecommenderPlanRequest) (*domain.RecommenderPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecommenderPlan), args.Error(1)
}

func (m *MockRecommenderRepository) Retrain(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRecommenderRepository) ReloadData(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRecommenderRepository) ModelInfo(ctx context.Context) (map[string]interface{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return m.Called(ctx, stream, group, messageID).Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}

// MockItineraryStore is a mock of ItineraryStore
type MockItineraryStore struct {
	mock.Mock
}

func (m *MockItineraryStore) Save(ctx context.Context, itinerary *domain.Itinerary) error {
	return m.Called(ctx, itinerary).Error(0)
}

func (m *MockItineraryStore) Get(ctx context.Context, id string) (*domain.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}

func ptrFloat64(v float64) *float64 { return &v }

func ptrBool(v bool) *bool { return &v }

var colombo = domain.Anchor{Name: "Colombo", Point: domain.Point{Lat: 6.9271, Lon: 79.8612}}

func newPlace(id, name, district, category string, lat, lon float64) *domain.Place {
	return &domain.Place{
		PlaceID:   id,
		Name:      name,
		District:  district,
		Category:  category,
		Latitude:  ptrFloat64(lat),
		Longitude: ptrFloat64(lon),
	}
}
