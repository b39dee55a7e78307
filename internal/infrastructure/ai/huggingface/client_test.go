package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fitforge/api/internal/infrastructure/config"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

func newTestClient(t *testing.T, url string, timeout time.Duration) *Client {
	t.Helper()
	cfg := &config.Config{}
	cfg.Inference.URL = url
	cfg.Inference.APIKey = "test-key"
	cfg.Inference.Timeout = timeout
	cfg.Inference.MaxNewTokens = 1000
	cfg.Inference.Temperature = 0.7
	cfg.Inference.TopP = 0.9
	return NewClient(cfg, zaptest.NewLogger(t))
}

func TestGenerate(t *testing.T) {
	t.Run("success returns raw generated text", func(t *testing.T) {
		var gotAuth string
		var gotBody generateRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"generated_text": "{\"answer\": \"treine pesado\"}"}]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 5*time.Second)
		text, err := client.Generate(context.Background(), "pergunta", outbound.DefaultGenerationParams())

		require.NoError(t, err)
		assert.Equal(t, `{"answer": "treine pesado"}`, text)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "pergunta", gotBody.Inputs)
		assert.Equal(t, 1000, gotBody.Parameters.MaxNewTokens)
		assert.True(t, gotBody.Parameters.DoSample)
	})

	t.Run("missing generated_text yields fixed fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"something_else": "x"}]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 5*time.Second)
		text, err := client.Generate(context.Background(), "pergunta", outbound.DefaultGenerationParams())

		require.NoError(t, err, "2xx with empty payload is degraded, not failed")
		assert.Equal(t, fallbackGeneratedText, text)
	})

	t.Run("bare object response shape is accepted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"generated_text": "resposta"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 5*time.Second)
		text, err := client.Generate(context.Background(), "pergunta", outbound.DefaultGenerationParams())

		require.NoError(t, err)
		assert.Equal(t, "resposta", text)
	})

	t.Run("non-2xx surfaces as inference unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model loading", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 5*time.Second)
		_, err := client.Generate(context.Background(), "pergunta", outbound.DefaultGenerationParams())

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeInferenceUnavailable))
	})

	t.Run("network failure surfaces as inference unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		client := newTestClient(t, server.URL, 5*time.Second)
		_, err := client.Generate(context.Background(), "pergunta", outbound.DefaultGenerationParams())

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeInferenceUnavailable))
	})

	t.Run("hanging endpoint times out instead of blocking", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer func() {
			close(release)
			server.Close()
		}()

		client := newTestClient(t, server.URL, 100*time.Millisecond)

		start := time.Now()
		_, err := client.Generate(context.Background(), "pergunta", outbound.DefaultGenerationParams())
		elapsed := time.Since(start)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeInferenceUnavailable))
		assert.Less(t, elapsed, 2*time.Second, "must fail within timeout, not hang")
	})

	t.Run("context cancellation is honored", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer func() {
			close(release)
			server.Close()
		}()

		client := newTestClient(t, server.URL, 10*time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.Generate(ctx, "pergunta", outbound.DefaultGenerationParams())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeInferenceUnavailable))
	})
}
