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

// minAutocompleteInput - короче этого подсказки не запрашиваются
const minAutocompleteInput = 2

// PlacesUseCase - подсказки адресов для полей start/end
type PlacesUseCase struct {
	places    repository.PlacesRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewPlacesUseCase(
	places repository.PlacesRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *PlacesUseCase {
	return &PlacesUseCase{
		places:    places,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func (uc *PlacesUseCase) Autocomplete(ctx context.Context, input string) ([]domain.PlacePrediction, error) {
	input = strings.TrimSpace(input)
	if len([]rune(input)) < minAutocompleteInput {
		return []domain.PlacePrediction{}, nil
	}

	key := "places:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(normalizeAddress(input))).String()

	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, key); err != nil {
			uc.logger.Warn("Places cache read failed", zap.Error(err))
		} else if data != nil {
			var cached []domain.PlacePrediction
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			if err := uc.cacheRepo.Delete(ctx, key); err != nil {
				uc.logger.Warn("Failed to evict places cache entry", zap.Error(err))
			}
		}
	}

	predictions, err := uc.places.Autocomplete(ctx, input)
	if err != nil {
		uc.logger.Error("Places autocomplete failed", zap.String("input", input), zap.Error(err))
		var pe providerError
		if stderrors.As(err, &pe) {
			return nil, errors.ErrUpstreamProvider.WithMessage("Google Places API Error").WithDetails(pe.Details())
		}
		return nil, errors.ErrUpstreamProvider.
			WithMessage("Failed to fetch place suggestions").
			WithDetails(map[string]interface{}{"error": err.Error()})
	}

	if uc.cacheRepo != nil && uc.cacheTTL > 0 {
		if data, err := json.Marshal(predictions); err == nil {
			if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Places cache write failed", zap.Error(err))
			}
		}
	}

	return predictions, nil
}
