package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
	"github.com/supply-route-service/internal/pkg/errors"
)

// providerError - ошибка провайдера с деталями для клиента
type providerError interface {
	error
	Details() map[string]interface{}
}

// RouteUseCase - расчет альтернативных маршрутов между двумя адресами
type RouteUseCase struct {
	directions  repository.DirectionsRepository
	cacheRepo   repository.CacheRepository
	dbCache     repository.DirectionsCacheRepository
	logger      *zap.Logger
	tariffPerKm float64
	cacheTTL    time.Duration
	dbCacheAge  time.Duration
}

func NewRouteUseCase(
	directions repository.DirectionsRepository,
	cacheRepo repository.CacheRepository,
	dbCache repository.DirectionsCacheRepository,
	logger *zap.Logger,
	tariffPerKm float64,
	cacheTTL time.Duration,
	dbCacheAge time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		directions:  directions,
		cacheRepo:   cacheRepo,
		dbCache:     dbCache,
		logger:      logger,
		tariffPerKm: tariffPerKm,
		cacheTTL:    cacheTTL,
		dbCacheAge:  dbCacheAge,
	}
}

// TariffPerKm - текущий тариф за километр
func (uc *RouteUseCase) TariffPerKm() float64 {
	return uc.tariffPerKm
}

// CalculateRoutes возвращает все альтернативы с рассчитанными метриками.
// Метрики считаются заново даже для закешированного ответа провайдера
func (uc *RouteUseCase) CalculateRoutes(ctx context.Context, start, end string) ([]domain.Route, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return nil, errors.ErrRouteEndpointsRequired
	}

	providerRoutes, err := uc.providerRoutes(ctx, start, end)
	if err != nil {
		return nil, err
	}

	routes, err := ComputeRoutes(providerRoutes, uc.tariffPerKm)
	if err != nil {
		uc.logger.Error("Provider returned invalid leg data",
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Routes calculated",
		zap.String("start", start),
		zap.String("end", end),
		zap.Int("routes", len(routes)))

	return routes, nil
}

func (uc *RouteUseCase) providerRoutes(ctx context.Context, start, end string) ([]domain.ProviderRoute, error) {
	origin, destination := normalizeAddress(start), normalizeAddress(end)
	key := directionsCacheKey(origin, destination)

	if routes, ok := uc.fromCache(ctx, key); ok {
		return routes, nil
	}
	if routes, ok := uc.fromDB(ctx, origin, destination); ok {
		uc.toCache(ctx, key, routes)
		return routes, nil
	}

	routes, err := uc.directions.GetRoutes(ctx, start, end)
	if err != nil {
		return nil, uc.upstreamError(err)
	}

	uc.toCache(ctx, key, routes)
	uc.toDB(ctx, origin, destination, routes)

	return routes, nil
}

func (uc *RouteUseCase) upstreamError(err error) error {
	var pe providerError
	if stderrors.As(err, &pe) {
		uc.logger.Error("Google Directions API Error", zap.Error(err))
		return errors.ErrUpstreamProvider.WithDetails(pe.Details())
	}

	uc.logger.Error("Error fetching route from provider", zap.Error(err))
	return errors.ErrUpstreamProvider.
		WithMessage("Failed to fetch route").
		WithDetails(map[string]interface{}{"error": err.Error()})
}

func (uc *RouteUseCase) fromCache(ctx context.Context, key string) ([]domain.ProviderRoute, bool) {
	if uc.cacheRepo == nil {
		return nil, false
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Directions cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var routes []domain.ProviderRoute
	if err := json.Unmarshal(data, &routes); err != nil {
		uc.logger.Warn("Corrupted directions cache entry", zap.String("key", key), zap.Error(err))
		if err := uc.cacheRepo.Delete(ctx, key); err != nil {
			uc.logger.Warn("Failed to evict directions cache entry", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return routes, true
}

func (uc *RouteUseCase) toCache(ctx context.Context, key string, routes []domain.ProviderRoute) {
	if uc.cacheRepo == nil || uc.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(routes)
	if err != nil {
		uc.logger.Warn("Failed to marshal provider routes", zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Directions cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (uc *RouteUseCase) fromDB(ctx context.Context, origin, destination string) ([]domain.ProviderRoute, bool) {
	if uc.dbCache == nil || uc.dbCacheAge <= 0 {
		return nil, false
	}

	entry, err := uc.dbCache.Get(ctx, origin, destination, uc.dbCacheAge)
	if err != nil {
		uc.logger.Warn("Directions DB cache read failed", zap.Error(err))
		return nil, false
	}
	if entry == nil {
		return nil, false
	}

	var routes []domain.ProviderRoute
	if err := json.Unmarshal(entry.Payload, &routes); err != nil {
		uc.logger.Warn("Corrupted directions DB cache entry",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Error(err))
		return nil, false
	}
	return routes, true
}

func (uc *RouteUseCase) toDB(ctx context.Context, origin, destination string, routes []domain.ProviderRoute) {
	if uc.dbCache == nil || uc.dbCacheAge <= 0 {
		return
	}

	data, err := json.Marshal(routes)
	if err != nil {
		uc.logger.Warn("Failed to marshal provider routes", zap.Error(err))
		return
	}

	err = uc.dbCache.Upsert(ctx, &domain.DirectionsCacheEntry{
		Origin:      origin,
		Destination: destination,
		Payload:     data,
		FetchedAt:   time.Now().UTC(),
	})
	if err != nil {
		uc.logger.Warn("Directions DB cache write failed", zap.Error(err))
	}
}

func normalizeAddress(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func directionsCacheKey(origin, destination string) string {
	return "directions:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(origin+"\x00"+destination)).String()
}
