package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/config"
	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
)

type directionsResponse struct {
	Status       string                 `json:"status"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Routes       []domain.ProviderRoute `json:"routes"`
}

type directionsClient struct {
	*client
}

// NewDirectionsClient создает клиент Google Directions API
func NewDirectionsClient(cfg *config.GoogleConfig, logger *zap.Logger) repository.DirectionsRepository {
	return &directionsClient{client: newClient(cfg, logger)}
}

// GetRoutes запрашивает альтернативные маршруты (alternatives=true).
// Статус, отличный от OK, возвращается как *APIError
func (c *directionsClient) GetRoutes(ctx context.Context, origin, destination string) ([]domain.ProviderRoute, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("alternatives", "true")

	var raw json.RawMessage
	if err := c.getJSON(ctx, "/maps/api/directions/json", params, &raw); err != nil {
		return nil, err
	}

	var resp directionsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Error("Failed to decode directions response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.Status != StatusOK {
		c.logger.Warn("Directions API returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("error_message", resp.ErrorMessage))
		return nil, newStatusError(resp.Status, resp.ErrorMessage, raw)
	}

	c.logger.Debug("Directions API call successful", zap.Int("routes", len(resp.Routes)))
	return resp.Routes, nil
}
