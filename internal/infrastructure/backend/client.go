// Package backend - REST-клиент backend'а складов и заявок
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/config"
	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
	"github.com/supply-route-service/internal/pkg/errors"
)

const (
	maxErrorBodySize    = 4096
	maxResponseBodySize = 8 << 20
)

type client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *zap.Logger
}

// NewClient создает клиент backend API
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) repository.BackendRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIToken,
		logger:  logger,
	}
}

func (c *client) ListWarehouseItems(ctx context.Context) ([]domain.WarehouseItem, error) {
	var items []domain.WarehouseItem
	if err := c.do(ctx, http.MethodGet, "/warehouse-items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *client) ListSupplyRequests(ctx context.Context) ([]domain.SupplyRequest, error) {
	var requests []domain.SupplyRequest
	if err := c.do(ctx, http.MethodGet, "/supply-requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *client) GetSupplyRequest(ctx context.Context, id int64) (*domain.SupplyRequest, error) {
	var request domain.SupplyRequest
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/supply-requests/%d", id), nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *client) CreateSupplyRequest(ctx context.Context, payload *domain.SupplyRequestPayload) (*domain.SupplyRequest, error) {
	var created domain.SupplyRequest
	if err := c.do(ctx, http.MethodPost, "/supply-requests", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// do выполняет запрос. Ответ может быть как голым JSON, так и обёрнутым в {"data": ...}
func (c *client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("Calling backend API", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return errors.ErrBackend.WithDetails(map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		message := errorMessage(raw, resp.StatusCode)
		c.logger.Warn("Backend returned error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", message))

		if resp.StatusCode == http.StatusNotFound {
			return errors.ErrNotFound.WithDetails(map[string]interface{}{"path": path})
		}
		return errors.ErrBackend.WithDetails(map[string]interface{}{
			"path":        path,
			"status_code": resp.StatusCode,
			"message":     message,
		})
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize+1))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(raw) > maxResponseBodySize {
		c.logger.Error("Backend response too large", zap.String("path", path))
		return errors.ErrBackend.WithDetails(map[string]interface{}{
			"path":  path,
			"error": "response too large",
		})
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(unwrapData(raw), out); err != nil {
		c.logger.Error("Failed to decode backend response", zap.String("path", path), zap.Error(err))
		return errors.ErrBackend.WithDetails(map[string]interface{}{
			"path":  path,
			"error": "unexpected response format",
		})
	}
	return nil
}

func unwrapData(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil || len(envelope.Data) == 0 {
		return trimmed
	}
	return envelope.Data
}

func errorMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", status)
}
