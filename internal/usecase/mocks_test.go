package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/supply-route-service/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockDirectionsRepository is a mock of DirectionsRepository
type MockDirectionsRepository struct {
	mock.Mock
}

func (m *MockDirectionsRepository) GetRoutes(ctx context.Context, origin, destination string) ([]domain.ProviderRoute, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProviderRoute), args.Error(1)
}

// MockPlacesRepository is a mock of PlacesRepository
type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) Autocomplete(ctx context.Context, input string) ([]domain.PlacePrediction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlacePrediction), args.Error(1)
}

// MockDirectionsCacheRepository is a mock of DirectionsCacheRepository
type MockDirectionsCacheRepository struct {
	mock.Mock
}

func (m *MockDirectionsCacheRepository) Get(ctx context.Context, origin, destination string, maxAge time.Duration) (*domain.DirectionsCacheEntry, error) {
	args := m.Called(ctx, origin, destination, maxAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectionsCacheEntry), args.Error(1)
}

func (m *MockDirectionsCacheRepository) Upsert(ctx context.Context, entry *domain.DirectionsCacheEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDirectionsCacheRepository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	args := m.Called(ctx, age)
	return args.Get(0).(int64), args.Error(1)
}

// MockBackendRepository is a mock of BackendRepository
type MockBackendRepository struct {
	mock.Mock
}

func (m *MockBackendRepository) ListWarehouseItems(ctx context.Context) ([]domain.WarehouseItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WarehouseItem), args.Error(1)
}

func (m *MockBackendRepository) ListSupplyRequests(ctx context.Context) ([]domain.SupplyRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyRequest), args.Error(1)
}

func (m *MockBackendRepository) GetSupplyRequest(ctx context.Context, id int64) (*domain.SupplyRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyRequest), args.Error(1)
}

func (m *MockBackendRepository) CreateSupplyRequest(ctx context.Context, payload *domain.SupplyRequestPayload) (*domain.SupplyRequest, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyRequest), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, minIdle, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockRouteLedgerRepository is a mock of RouteLedgerRepository
type MockRouteLedgerRepository struct {
	mock.Mock
}

func (m *MockRouteLedgerRepository) Record(ctx context.Context, entry *domain.RouteCostEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockRouteLedgerRepository) GetBySupplyRequestID(ctx context.Context, supplyRequestID int64) (*domain.RouteCostEntry, error) {
	args := m.Called(ctx, supplyRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteCostEntry), args.Error(1)
}

func (m *MockRouteLedgerRepository) Summary(ctx context.Context, filter domain.RouteCostFilter) (*domain.RouteCostReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteCostReport), args.Error(1)
}

// MockRouteCalculator is a mock of the dialog route calculator
type MockRouteCalculator struct {
	mock.Mock
}

func (m *MockRouteCalculator) CalculateRoutes(ctx context.Context, start, end string) ([]domain.Route, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

// MockSupplyRequestService is a mock of the dialog supply request service
type MockSupplyRequestService struct {
	mock.Mock
}

func (m *MockSupplyRequestService) FindStockItem(ctx context.Context, warehouseID, itemID int64) (*domain.WarehouseItem, error) {
	args := m.Called(ctx, warehouseID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseItem), args.Error(1)
}

func (m *MockSupplyRequestService) Submit(ctx context.Context, payload *domain.SupplyRequestPayload) (*domain.SupplyRequest, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyRequest), args.Error(1)
}

// quantity builds a provider value/text pair
func quantity(text string, value string) domain.ProviderQuantity {
	q := domain.ProviderQuantity{Text: text}
	if value != "" {
		q.Value = []byte(value)
	}
	return q
}

func providerRoute(meters, seconds, durationText, points string) domain.ProviderRoute {
	r := domain.ProviderRoute{
		Legs: []domain.ProviderLeg{{
			Distance:     quantity("", meters),
			Duration:     quantity(durationText, seconds),
			StartAddress: "Yangon, Myanmar",
			EndAddress:   "Mandalay, Myanmar",
		}},
	}
	r.OverviewPolyline.Points = points
	return r
}

// samplePolyline decodes to (38.5,-120.2), (40.7,-120.95), (43.252,-126.453)
const samplePolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
