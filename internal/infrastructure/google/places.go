package google

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/config"
	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
)

// StatusZeroResults - подсказок нет, это не ошибка
const StatusZeroResults = "ZERO_RESULTS"

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Predictions  []struct {
		PlaceID              string   `json:"place_id"`
		Description          string   `json:"description"`
		Types                []string `json:"types"`
		StructuredFormatting struct {
			MainText      string `json:"main_text"`
			SecondaryText string `json:"secondary_text"`
		} `json:"structured_formatting"`
	} `json:"predictions"`
}

type placesClient struct {
	*client
	country string
}

// NewPlacesClient создает клиент Places Autocomplete, ограниченный одной страной
func NewPlacesClient(cfg *config.GoogleConfig, logger *zap.Logger) repository.PlacesRepository {
	return &placesClient{
		client:  newClient(cfg, logger),
		country: cfg.PlacesCountry,
	}
}

// Autocomplete возвращает подсказки адресов и организаций
func (c *placesClient) Autocomplete(ctx context.Context, input string) ([]domain.PlacePrediction, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("types", "geocode|establishment")
	if c.country != "" {
		params.Set("components", "country:"+strings.ToLower(c.country))
	}

	var resp autocompleteResponse
	if err := c.getJSON(ctx, "/maps/api/place/autocomplete/json", params, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case StatusOK:
	case StatusZeroResults:
		return []domain.PlacePrediction{}, nil
	default:
		c.logger.Warn("Places API returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("error_message", resp.ErrorMessage))
		return nil, &APIError{Status: resp.Status, ErrorMessage: resp.ErrorMessage}
	}

	result := make([]domain.PlacePrediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		result = append(result, domain.PlacePrediction{
			PlaceID:       p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
			Types:         p.Types,
		})
	}
	return result, nil
}
