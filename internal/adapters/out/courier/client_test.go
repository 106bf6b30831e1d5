package courier_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchen/internal/adapters/out/courier"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("should require a base URL", func(t *testing.T) {
		_, err := courier.NewClient("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should create a client", func(t *testing.T) {
		client, err := courier.NewClient("http://delivery.local")
		require.NoError(t, err)
		require.NotNil(t, client)
	})
}

func TestClient_RequestDelivery(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should post the dispatch request", func(t *testing.T) {
		var captured struct {
			OrderID         string `json:"orderId"`
			Amount          int64  `json:"amount"`
			DeliveryAddress string `json:"deliveryAddress"`
		}
		calls := 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/deliveries", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client, err := courier.NewClient(server.URL)
		require.NoError(t, err)

		err = client.RequestDelivery(t.Context(), orderID, 240000, "123 Main Street")
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, orderID.String(), captured.OrderID)
		assert.Equal(t, int64(240000), captured.Amount)
		assert.Equal(t, "123 Main Street", captured.DeliveryAddress)
	})

	t.Run("should fail on a non-2xx response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client, err := courier.NewClient(server.URL)
		require.NoError(t, err)

		err = client.RequestDelivery(t.Context(), orderID, 240000, "123 Main Street")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("should reject a zero-value order id", func(t *testing.T) {
		client, err := courier.NewClient("http://delivery.local")
		require.NoError(t, err)

		require.Error(t, client.RequestDelivery(t.Context(), kernel.UUID{}, 1, "addr"))
	})
}
