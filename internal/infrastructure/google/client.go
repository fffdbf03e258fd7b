// Package google - HTTP-клиент Google Maps Platform (Directions, Places Autocomplete)
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/supply-route-service/internal/config"
)

// StatusOK - успешный статус ответа Google API
const StatusOK = "OK"

// APIError - ответ Google API со статусом, отличным от OK
type APIError struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	HTTPStatus   int    `json:"http_status,omitempty"`

	// Response - полный ответ провайдера, если он пришёл JSON-объектом
	Response map[string]interface{} `json:"-"`
}

// newStatusError собирает APIError из ответа со статусом, отличным от OK
func newStatusError(status, message string, raw []byte) *APIError {
	apiErr := &APIError{Status: status, ErrorMessage: message}
	var response map[string]interface{}
	if err := json.Unmarshal(raw, &response); err == nil {
		apiErr.Response = response
	}
	return apiErr
}

func (e *APIError) Error() string {
	if e.ErrorMessage != "" {
		return fmt.Sprintf("google api status %s: %s", e.Status, e.ErrorMessage)
	}
	return fmt.Sprintf("google api status %s", e.Status)
}

// Details - поля ошибки для ответа клиенту: полный ответ провайдера, иначе статус и сообщение
func (e *APIError) Details() map[string]interface{} {
	if len(e.Response) > 0 {
		details := make(map[string]interface{}, len(e.Response))
		for k, v := range e.Response {
			details[k] = v
		}
		return details
	}

	details := map[string]interface{}{"status": e.Status}
	if e.ErrorMessage != "" {
		details["error_message"] = e.ErrorMessage
	}
	if e.HTTPStatus != 0 {
		details["http_status"] = e.HTTPStatus
	}
	return details
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

func newClient(cfg *config.GoogleConfig, logger *zap.Logger) *client {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// getJSON выполняет GET и декодирует тело в out. Ключ API не попадает в логи
func (c *client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	c.logger.Debug("Calling Google API", zap.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("path", path), zap.Error(redactKey(err, c.apiKey)))
		return fmt.Errorf("failed to execute request: %w", redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Google API returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		apiErr := newStatusError(http.StatusText(resp.StatusCode), strings.TrimSpace(string(body)), body)
		apiErr.HTTPStatus = resp.StatusCode
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// redactKey убирает ключ API из текста ошибки (url.Error содержит полный URL)
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
