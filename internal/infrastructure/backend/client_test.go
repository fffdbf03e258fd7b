package backend

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/config"
	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/pkg/errors"
)

func newTestClient(url string) *client {
	return NewClient(&config.BackendConfig{
		BaseURL:        url + "/",
		APIToken:       "secret-token",
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop()).(*client)
}

func TestClient_ListWarehouseItems(t *testing.T) {
	t.Run("data envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/warehouse-items", r.URL.Path)
			assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"data":[{"id":1,"ware_house_id":3,"item_id":8,"quantity":40,"item":{"name":"Rice","unit":"bag"}}]}`))
		}))
		defer server.Close()

		items, err := newTestClient(server.URL).ListWarehouseItems(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(8), items[0].ItemID)
		assert.Equal(t, "Rice", items[0].Item.Name)
	})

	t.Run("bare array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":2,"ware_house_id":4,"item_id":9,"quantity":0}]`))
		}))
		defer server.Close()

		items, err := newTestClient(server.URL).ListWarehouseItems(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 0, items[0].Quantity)
	})
}

func TestClient_CreateSupplyRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/supply-requests", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "12.34", payload["distance_km"])
		assert.Equal(t, "7.67", payload["distance_miles"])
		assert.EqualValues(t, 6787, payload["charge"])
		assert.EqualValues(t, 3, payload["ware_house_id"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":55,"ngo_id":7,"ware_house_id":3,"status":"pending","route_infos":[{"charge":6787,"distance_km":"12.34"}]}}`))
	}))
	defer server.Close()

	created, err := newTestClient(server.URL).CreateSupplyRequest(context.Background(), &domain.SupplyRequestPayload{
		NGOID:         7,
		WarehouseID:   3,
		Items:         []domain.RequestedItem{{WarehouseID: 3, ItemID: 8, Quantity: 2}},
		DistanceKm:    "12.34",
		DistanceMiles: "7.67",
		Charge:        6787,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(55), created.ID)
	assert.Equal(t, int64(6787), created.DeliveryCost())
}

func TestClient_Errors(t *testing.T) {
	t.Run("backend message is propagated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"The items field is required."}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CreateSupplyRequest(context.Background(), &domain.SupplyRequestPayload{})
		require.True(t, stderrors.Is(err, errors.ErrBackend))

		appErr, _ := errors.As(err)
		assert.Equal(t, "The items field is required.", appErr.Details["message"])
	})

	t.Run("fallback message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).ListSupplyRequests(context.Background())
		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, "HTTP error! status: 500", appErr.Details["message"])
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetSupplyRequest(context.Background(), 404)
		assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	})

	t.Run("error body is read up to a limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"message":"` + strings.Repeat("x", 2*maxErrorBodySize) + `"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).ListWarehouseItems(context.Background())
		appErr, ok := errors.As(err)
		require.True(t, ok)
		// the truncated body is not valid JSON any more
		assert.Equal(t, "HTTP error! status: 502", appErr.Details["message"])
	})

	t.Run("oversized response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("[" + strings.Repeat(" ", maxResponseBodySize) + "]"))
		}))
		defer server.Close()

		items, err := newTestClient(server.URL).ListWarehouseItems(context.Background())
		assert.Nil(t, items)
		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrBackend.Code, appErr.Code)
		assert.Equal(t, "response too large", appErr.Details["error"])
	})
}
