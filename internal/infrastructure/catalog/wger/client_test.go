package wger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fitforge/api/internal/infrastructure/config"
)

func newTestClient(t *testing.T, url, apiKey string) *Client {
	t.Helper()
	cfg := &config.Config{}
	cfg.Catalog.Wger.BaseURL = url
	cfg.Catalog.Wger.APIKey = apiKey
	return NewClient(cfg, zaptest.NewLogger(t))
}

func TestSearchIngredient(t *testing.T) {
	t.Run("decodes wger decimal strings", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "frango", r.URL.Query().Get("name"))
			w.Write([]byte(`{"results": [{"id": 42, "name": "Frango", "energy": 165, "protein": "31.00", "carbohydrates": "0.00", "fat": "3.60"}]}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "test-key")
		foods, err := client.SearchIngredient(context.Background(), "frango", 10)

		require.NoError(t, err)
		require.Len(t, foods, 1)
		assert.Equal(t, int64(42), foods[0].ID)
		assert.Equal(t, 31.0, foods[0].ProteinGrams)
		assert.Equal(t, 3.6, foods[0].FatGrams)
		assert.Equal(t, 100.0, foods[0].PerGrams)
	})

	t.Run("upstream failure falls back to sample data", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "test-key")
		foods, err := client.SearchIngredient(context.Background(), "frango", 10)

		require.NoError(t, err)
		require.NotEmpty(t, foods)
		assert.Contains(t, foods[0].Name, "frango")
	})
}

func TestIngredientByID(t *testing.T) {
	t.Run("fetches single ingredient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ingredient/42/", r.URL.Path)
			w.Write([]byte(`{"id": 42, "name": "Frango", "energy": 165, "protein": "31.00", "carbohydrates": "0.00", "fat": "3.60"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "")
		food, err := client.IngredientByID(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, "Frango", food.Name)
	})

	t.Run("unknown id with upstream down returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "")
		_, err := client.IngredientByID(context.Background(), 999999)
		assert.Error(t, err)
	})
}
