package exercisedb

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
	cfg.Catalog.ExerciseDB.BaseURL = url
	cfg.Catalog.ExerciseDB.APIKey = apiKey
	cfg.Catalog.ExerciseDB.APIHost = "exercisedb.test"
	return NewClient(cfg, zaptest.NewLogger(t))
}

func TestByMuscleGroup(t *testing.T) {
	t.Run("proxies upstream with rapidapi headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
			assert.Equal(t, "exercisedb.test", r.Header.Get("x-rapidapi-host"))
			assert.Equal(t, "/exercises/bodyPart/chest", r.URL.Path)
			w.Write([]byte(`[{"id": "0001", "name": "barbell bench press", "bodyPart": "chest", "equipment": "barbell", "target": "pectorals"}]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "test-key")
		exercises, err := client.ByMuscleGroup(context.Background(), "chest", 10)

		require.NoError(t, err)
		require.Len(t, exercises, 1)
		assert.Equal(t, "barbell bench press", exercises[0].Name)
	})

	t.Run("portuguese muscle names resolve to body parts", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/exercises/bodyPart/upper%20legs", r.URL.EscapedPath())
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "test-key")
		_, err := client.ByMuscleGroup(context.Background(), "Perna", 0)
		require.NoError(t, err)
	})

	t.Run("missing api key serves sample data", func(t *testing.T) {
		client := newTestClient(t, "http://unused.invalid", "")
		exercises, err := client.ByMuscleGroup(context.Background(), "chest", 0)

		require.NoError(t, err)
		require.NotEmpty(t, exercises)
		for _, ex := range exercises {
			assert.Equal(t, "chest", ex.BodyPart)
		}
	})

	t.Run("upstream failure falls back to sample data", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "test-key")
		exercises, err := client.ByMuscleGroup(context.Background(), "back", 2)

		require.NoError(t, err)
		require.NotEmpty(t, exercises)
		assert.LessOrEqual(t, len(exercises), 2)
	})
}

func TestByEquipment(t *testing.T) {
	t.Run("limit caps results", func(t *testing.T) {
		client := newTestClient(t, "http://unused.invalid", "")
		exercises, err := client.ByEquipment(context.Background(), "barbell", 2)

		require.NoError(t, err)
		assert.Len(t, exercises, 2)
	})
}
